package form

import (
	"testing"

	"github.com/chritchens/sophia/pkg/value"
)

func TestProdForm_00(t *testing.T) {
	form := checkRoundTrip(t, ParseProdForm, "(prod a b 10)")
	//
	if len(form.Values) != 3 {
		t.Errorf("expected 3 values, got %d", len(form.Values))
	}
}

func TestProdForm_01(t *testing.T) {
	form := checkRoundTrip(t, ParseProdForm, "(prod () 'c' \"text\" -1 +0.5)")
	//
	for i, v := range form.Values {
		if _, ok := v.(value.SimpleValue); !ok {
			t.Errorf("value %d is %T, expected a simple value", i, v)
		}
	}
}

func TestProdForm_02(t *testing.T) {
	// A nested product wins over an application of the same text.
	form := checkRoundTrip(t, ParseProdForm, "(prod a (prod b c) (math.+ 1 2))")
	//
	if _, ok := form.Values[1].(*ProdForm); !ok {
		t.Errorf("expected a nested product, got %T", form.Values[1])
	}
	//
	if _, ok := form.Values[2].(*AppForm); !ok {
		t.Errorf("expected a nested application, got %T", form.Values[2])
	}
}

func TestProdForm_03(t *testing.T) {
	checkInvalid(t, ParseProdForm, "(sum a)", "expected a prod keyword")
	checkInvalid(t, ParseProdForm, "(prod)", "expected at least one value")
	checkInvalid(t, ParseProdForm, "(prod def)", "unexpected keyword")
	checkInvalid(t, ParseProdForm, "(prod (10 20))", "unexpected form")
}

func TestSumForm_00(t *testing.T) {
	form := checkRoundTrip(t, ParseSumForm, "(sum 42)")
	//
	if form.Value.String() != "42" {
		t.Errorf("unexpected value text %q", form.Value.String())
	}
}

func TestSumForm_01(t *testing.T) {
	form := checkRoundTrip(t, ParseSumForm, "(sum (prod 10 32))")
	//
	if _, ok := form.Value.(*ProdForm); !ok {
		t.Errorf("expected a product value, got %T", form.Value)
	}
}

func TestSumForm_02(t *testing.T) {
	checkInvalid(t, ParseSumForm, "(prod a)", "expected a sum keyword")
	checkInvalid(t, ParseSumForm, "(sum)", "expected a value")
	checkInvalid(t, ParseSumForm, "(sum a b)", "expected a value")
}
