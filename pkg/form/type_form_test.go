package form

import (
	"testing"
)

func TestTypeForm_00(t *testing.T) {
	form := checkRoundTrip(t, ParseTypeForm, "(type T Empty)")
	//
	if form.Name.Text() != "T" {
		t.Errorf("expected name %q, got %q", "T", form.Name.Text())
	}
	//
	if !form.IsEmptyType() || form.Value.String() != "Empty" {
		t.Errorf("expected the empty type, got %s", form.Value)
	}
}

func TestTypeForm_01(t *testing.T) {
	form := checkRoundTrip(t, ParseTypeForm, "(type T Atomic)")
	//
	if !form.IsAtomicType() || form.Value.String() != "Atomic" {
		t.Errorf("expected the atomic type, got %s", form.Value)
	}
}

func TestTypeForm_02(t *testing.T) {
	form := checkRoundTrip(t, ParseTypeForm, "(type T Char)")
	//
	if !form.IsTypeKeyword() || form.Value.String() != "Char" {
		t.Errorf("expected a type keyword, got %s", form.Value)
	}
}

func TestTypeForm_03(t *testing.T) {
	form := checkRoundTrip(t, ParseTypeForm, "(type T X)")
	//
	if !form.IsTypeSymbol() || form.Value.String() != "X" {
		t.Errorf("expected a type symbol, got %s", form.Value)
	}
}

func TestTypeForm_04(t *testing.T) {
	form := checkRoundTrip(t, ParseTypeForm, "(type T (Fun moduleX.X Char (Pair A B)))")
	//
	if !form.IsTypesForm() {
		t.Fatalf("expected a form of types, got %s", form.Value)
	}
	//
	if form.Value.String() != "(Fun moduleX.X Char (Pair A B))" {
		t.Errorf("unexpected value text %q", form.Value.String())
	}
}

func TestTypeForm_05(t *testing.T) {
	checkInvalid(t, ParseTypeForm, "(sig t Char)", "expected a type keyword")
	checkInvalid(t, ParseTypeForm, "(type T)", "expected a name and a type")
	checkInvalid(t, ParseTypeForm, "(type t Empty)", "expected an unqualified type symbol")
	checkInvalid(t, ParseTypeForm, "(type moduleX.T Empty)", "expected an unqualified type symbol")
	checkInvalid(t, ParseTypeForm, "(type Char Empty)", "expected an unqualified type symbol")
	checkInvalid(t, ParseTypeForm, "(type T x)", "unexpected value")
	checkInvalid(t, ParseTypeForm, "(type T 10)", "unexpected value")
	checkInvalid(t, ParseTypeForm, "(type T (fun () x))", "expected a form of types")
	checkInvalid(t, ParseTypeForm, "(type (T) Empty)", "unexpected form")
}

func TestTypesForm_00(t *testing.T) {
	form := checkRoundTrip(t, ParseTypesForm, "(Fun A B)")
	//
	if form.Head.Text() != "Fun" {
		t.Errorf("expected head %q, got %q", "Fun", form.Head.Text())
	}
	//
	if len(form.Tail) != 2 {
		t.Errorf("expected 2 types, got %d", len(form.Tail))
	}
}

func TestTypesForm_01(t *testing.T) {
	form := checkRoundTrip(t, ParseTypesForm, "(Pair A (Sum B moduleX.C))")
	//
	if form.Tail[1].Kind != FormType {
		t.Errorf("expected a nested form of types, got %s", form.Tail[1])
	}
}

func TestTypesForm_02(t *testing.T) {
	checkInvalid(t, ParseTypesForm, "(f A)", "expected a type keyword or a type symbol")
	checkInvalid(t, ParseTypesForm, "(Fun)", "expected at least one type")
	checkInvalid(t, ParseTypesForm, "(Fun x)", "unexpected value")
}
