package form

import (
	"testing"
)

func TestLetForm_00(t *testing.T) {
	// A let with no definitions is just its body.
	form := checkRoundTrip(t, ParseLetForm, "(let x)")
	//
	if len(form.Defs) != 0 {
		t.Errorf("expected no defs, got %d", len(form.Defs))
	}
	//
	if form.Body.String() != "x" {
		t.Errorf("unexpected body text %q", form.Body.String())
	}
}

func TestLetForm_01(t *testing.T) {
	form := checkRoundTrip(t, ParseLetForm,
		"(let (sig x Int) (attrs x (prod inline)) (f x 10))")
	//
	if len(form.Defs) != 2 {
		t.Fatalf("expected 2 defs, got %d", len(form.Defs))
	}
	//
	if _, ok := form.Defs[0].(*SigForm); !ok {
		t.Errorf("expected a signature def, got %T", form.Defs[0])
	}
	//
	if _, ok := form.Defs[1].(*AttrsForm); !ok {
		t.Errorf("expected an attributes def, got %T", form.Defs[1])
	}
	//
	if _, ok := form.Body.(*AppForm); !ok {
		t.Errorf("expected an application body, got %T", form.Body)
	}
}

func TestLetForm_02(t *testing.T) {
	form := checkRoundTrip(t, ParseLetForm,
		"(let (type T Char) (sig f (Fun T T)) (case x (match () y) (match z z)))")
	//
	if _, ok := form.Defs[0].(*TypeForm); !ok {
		t.Errorf("expected a type def, got %T", form.Defs[0])
	}
	//
	if _, ok := form.Body.(*CaseForm); !ok {
		t.Errorf("expected a case body, got %T", form.Body)
	}
}

func TestLetForm_03(t *testing.T) {
	checkInvalid(t, ParseLetForm, "(fun () x)", "expected a let keyword")
	checkInvalid(t, ParseLetForm, "(let)", "expected a body")
	checkInvalid(t, ParseLetForm, "(let x y)", "expected a definition form")
	checkInvalid(t, ParseLetForm, "(let (10 20) x)", "expected a definition form")
}
