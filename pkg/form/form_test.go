package form

import (
	"strings"
	"testing"

	"github.com/chritchens/sophia/pkg/value"
)

func TestForm_00(t *testing.T) {
	f := parseGeneric(t, "(f x 10)")
	//
	if f.Head.Text() != "f" {
		t.Errorf("expected head %q, got %q", "f", f.Head.Text())
	}
	//
	if len(f.Tail) != 2 {
		t.Errorf("expected 2 tail elements, got %d", len(f.Tail))
	}
	//
	if f.String() != "(f x 10)" {
		t.Errorf("unexpected canonical text %q", f.String())
	}
}

func TestForm_01(t *testing.T) {
	f := parseGeneric(t, "(f (g x) y)")
	//
	nested, ok := f.Tail[0].(*Form)
	if !ok {
		t.Fatalf("expected a nested form, got %T", f.Tail[0])
	}
	//
	if nested.Head.Text() != "g" {
		t.Errorf("expected nested head %q, got %q", "g", nested.Head.Text())
	}
	//
	if _, ok := f.Tail[1].(value.SimpleValue); !ok {
		t.Errorf("expected a simple value, got %T", f.Tail[1])
	}
	//
	if f.String() != "(f (g x) y)" {
		t.Errorf("unexpected canonical text %q", f.String())
	}
}

func TestForm_02(t *testing.T) {
	f := parseGeneric(t, "# leading\n(f x) # trailing")
	//
	if f.Head.Text() != "f" || len(f.Tail) != 1 {
		t.Errorf("unexpected form %s", f)
	}
}

func TestForm_03(t *testing.T) {
	checkInvalid(t, FromString, "x", "expected a form")
	checkInvalid(t, FromString, ")", "unexpected end of form")
	checkInvalid(t, FromString, "( )", "expected a form head")
	checkInvalid(t, FromString, "((f) x)", "expected a form head")
	checkInvalid(t, FromString, "(f", "unclosed form")
	checkInvalid(t, FromString, "(f x) y", "unexpected remainder")
}

// ==================================================================
// Framework
// ==================================================================

func parseGeneric(t *testing.T, input string) *Form {
	t.Helper()
	//
	form, err := FromString(input)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", input, err)
	}
	//
	return form
}

// Parse a given input with a given form parser and check the node prints
// back to the exact input text.
func checkRoundTrip[T interface{ String() string }](
	t *testing.T, parse func(string) (T, error), input string,
) T {
	t.Helper()
	//
	form, err := parse(input)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", input, err)
	}
	//
	if form.String() != input {
		t.Errorf("round trip of %q produced %q", input, form.String())
	}
	//
	return form
}

// Check a given input fails a given form parser with a given message.
func checkInvalid[T any](
	t *testing.T, parse func(string) (T, error), input string, msg string,
) {
	t.Helper()
	//
	if _, err := parse(input); err == nil {
		t.Errorf("parsing %q: expected error %q", input, msg)
	} else if !strings.Contains(err.Error(), msg) {
		t.Errorf("parsing %q: got error %q, expected %q", input, err, msg)
	}
}
