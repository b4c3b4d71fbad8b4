package form

import (
	"testing"
)

func TestAppForm_00(t *testing.T) {
	form := checkRoundTrip(t, ParseAppForm, "(math.+ 1 2)")
	//
	if form.Name.Text() != "math.+" {
		t.Errorf("expected name %q, got %q", "math.+", form.Name.Text())
	}
	//
	if len(form.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(form.Args))
	}
}

func TestAppForm_01(t *testing.T) {
	// Applications admit zero arguments.
	form := checkRoundTrip(t, ParseAppForm, "(exit)")
	//
	if len(form.Args) != 0 {
		t.Errorf("expected no args, got %d", len(form.Args))
	}
}

func TestAppForm_02(t *testing.T) {
	// Definition keywords are applicable heads.
	form := checkRoundTrip(t, ParseAppForm, "(def pi 3.14)")
	//
	if form.Name.Text() != "def" {
		t.Errorf("expected name %q, got %q", "def", form.Name.Text())
	}
}

func TestAppForm_03(t *testing.T) {
	form := checkRoundTrip(t, ParseAppForm, "(printf \"{}\" (math.exp (prod 2 10)))")
	//
	if _, ok := form.Args[1].(*AppForm); !ok {
		t.Errorf("expected a nested application, got %T", form.Args[1])
	}
}

func TestAppForm_04(t *testing.T) {
	checkInvalid(t, ParseAppForm, "(Square 10)", "expected a value symbol")
	checkInvalid(t, ParseAppForm, "(10 20)", "expected a value symbol")
	checkInvalid(t, ParseAppForm, "(f def)", "unexpected keyword")
}
