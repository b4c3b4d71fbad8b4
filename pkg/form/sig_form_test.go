package form

import (
	"testing"
)

func TestSigForm_00(t *testing.T) {
	form := checkRoundTrip(t, ParseSigForm, "(sig t Empty)")
	//
	if form.Name.Text() != "t" {
		t.Errorf("expected name %q, got %q", "t", form.Name.Text())
	}
	//
	if !form.IsEmptyType() {
		t.Errorf("expected the empty type, got %s", form.Value)
	}
}

func TestSigForm_01(t *testing.T) {
	form := checkRoundTrip(t, ParseSigForm, "(sig t Atomic)")
	//
	if !form.IsAtomicType() {
		t.Errorf("expected the atomic type, got %s", form.Value)
	}
}

func TestSigForm_02(t *testing.T) {
	form := checkRoundTrip(t, ParseSigForm, "(sig t Char)")
	//
	if !form.IsTypeKeyword() || form.Value.String() != "Char" {
		t.Errorf("expected a type keyword, got %s", form.Value)
	}
}

func TestSigForm_03(t *testing.T) {
	form := checkRoundTrip(t, ParseSigForm, "(sig t X)")
	//
	if !form.IsTypeSymbol() || form.Value.String() != "X" {
		t.Errorf("expected a type symbol, got %s", form.Value)
	}
}

func TestSigForm_04(t *testing.T) {
	form := checkRoundTrip(t, ParseSigForm, "(sig t (Fun moduleX.X Char (Pair A B)))")
	//
	if !form.IsTypesForm() {
		t.Fatalf("expected a form of types, got %s", form.Value)
	}
	//
	if form.Value.String() != "(Fun moduleX.X Char (Pair A B))" {
		t.Errorf("unexpected value text %q", form.Value.String())
	}
}

func TestSigForm_05(t *testing.T) {
	checkInvalid(t, ParseSigForm, "(type T Empty)", "expected a sig keyword")
	checkInvalid(t, ParseSigForm, "(sig t)", "expected a name and a type")
	checkInvalid(t, ParseSigForm, "(sig T Char)", "expected an unqualified value symbol")
	checkInvalid(t, ParseSigForm, "(sig moduleX.t Char)", "expected an unqualified value symbol")
	checkInvalid(t, ParseSigForm, "(sig t x)", "unexpected value")
	checkInvalid(t, ParseSigForm, "(sig (t) Char)", "unexpected form")
}
