package value

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chritchens/sophia/pkg/types"
)

const TestDir = "../../testdata"

func TestValues_00(t *testing.T) {
	values := parseValues(t, "# comment\n#! doc comment")
	//
	if len(values) != 0 {
		t.Errorf("expected comments to produce no values, got %d", len(values))
	}
}

func TestValues_01(t *testing.T) {
	v := parseOne(t, "()")
	//
	checkTyping(t, v, types.NewType(types.EmptyKind))
	checkLiteral(t, v, Empty, "()")
}

func TestValues_02(t *testing.T) {
	v := parseOne(t, "defsig")
	//
	if v.Name != "defsig" {
		t.Errorf("expected name %q, got %q", "defsig", v.Name)
	}
	//
	checkTyping(t, v, types.NewType(types.BuiltinKind))
}

func TestValues_03(t *testing.T) {
	v := parseOne(t, "b101010")
	//
	checkTyping(t, v, types.NewType(types.UIntKind))
	checkLiteral(t, v, UInt, "b101010")
}

func TestValues_04(t *testing.T) {
	v := parseOne(t, "-3290")
	//
	checkTyping(t, v, types.NewType(types.IntKind))
	checkLiteral(t, v, Int, "-3290")
}

func TestValues_05(t *testing.T) {
	v := parseOne(t, "+0.432E-100")
	//
	checkTyping(t, v, types.NewType(types.FloatKind))
	checkLiteral(t, v, Float, "+0.432E-100")
}

func TestValues_06(t *testing.T) {
	v := parseOne(t, "'''")
	//
	checkTyping(t, v, types.NewType(types.CharKind))
	checkLiteral(t, v, Char, "'")
}

func TestValues_07(t *testing.T) {
	v := parseOne(t, "\"\\\"\"")
	//
	checkTyping(t, v, types.NewType(types.StringKind))
	checkLiteral(t, v, String, "\\\"")
}

func TestValues_08(t *testing.T) {
	v := parseOne(t, "Int")
	checkTyping(t, v, types.NewType(types.TypeKind))
	//
	v = parseOne(t, "square")
	checkTyping(t, v, types.NewType(types.UnknownKind))
}

func TestValues_09(t *testing.T) {
	v := parseOne(t, "(+ 1 (sum (square 3) 4))")
	//
	if v.Name != "+" {
		t.Errorf("expected name %q, got %q", "+", v.Name)
	}
	//
	if v.Literal != nil {
		t.Errorf("expected no literal, got %v", v.Literal)
	}
	//
	if len(v.Children) != 3 {
		t.Errorf("expected 3 children, got %d", len(v.Children))
	}
	//
	checkTyping(t, v, types.NewApp(
		types.NewType(types.UnknownKind),
		types.NewType(types.UIntKind),
		types.NewApp(
			types.NewType(types.UnknownKind),
			types.NewApp(
				types.NewType(types.UnknownKind),
				types.NewType(types.UIntKind),
			),
			types.NewType(types.UIntKind),
		),
	))
}

func TestValues_10(t *testing.T) {
	checkRoundTrip(t, "()")
	checkRoundTrip(t, "defsig")
	checkRoundTrip(t, "'''")
	checkRoundTrip(t, "\"hello world\"")
	checkRoundTrip(t, "(+ 1 (sum (square 3) 4))")
	checkRoundTrip(t, "(import std.io)\n(def pi 3.14)")
}

func TestValues_11(t *testing.T) {
	v := parseOne(t, "(+ 1 (sum (square 3) 4))")
	clone := v.Clone()
	//
	if diff := cmp.Diff(v, clone); diff != "" {
		t.Fatalf("clone differs from original:\n%s", diff)
	}
	// Mutating the clone must leave the original untouched.
	clone.Children[2].Children[0].Name = "mangled"
	clone.Typing.Args[0] = types.NewType(types.IntKind)
	//
	if v.Children[2].Children[0].Name == "mangled" {
		t.Errorf("clone shares children with original")
	}
	//
	if v.Typing.Args[0].Kind == types.IntKind {
		t.Errorf("clone shares typing with original")
	}
}

func TestValues_12(t *testing.T) {
	checkParseErr(t, ")", "unexpected end of form")
	checkParseErr(t, "(def x 10", "unclosed form")
	checkParseErr(t, "( )", "empty form")
	checkParseErr(t, "(a (b c)", "unclosed form")
}

func TestValues_13(t *testing.T) {
	values, err := ParseFile(filepath.Join(TestDir, "sum.sp"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
	//
	checkTyping(t, values[2], types.NewApp(
		types.NewType(types.UnknownKind),
		types.NewApp(
			types.NewType(types.UnknownKind),
			types.NewType(types.UIntKind),
			types.NewType(types.UIntKind),
		),
	))
}

func TestValues_14(t *testing.T) {
	const input = "(+ 1 (sum (square 3) 4))"
	//
	expected := parseOne(t, input)
	results := make([]Values, 8)
	//
	var wg sync.WaitGroup
	//
	for i := range results {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			//
			results[i], _ = ParseString(input)
		}(i)
	}
	//
	wg.Wait()
	//
	for i, vs := range results {
		if len(vs) != 1 {
			t.Errorf("goroutine %d: expected 1 value, got %d", i, len(vs))
		} else if diff := cmp.Diff(expected, vs[0]); diff != "" {
			t.Errorf("goroutine %d: parse mismatch:\n%s", i, diff)
		}
	}
}

// ==================================================================
// Framework
// ==================================================================

func parseValues(t *testing.T, input string) Values {
	t.Helper()
	//
	values, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", input, err)
	}
	//
	return values
}

func parseOne(t *testing.T, input string) Value {
	t.Helper()
	//
	values := parseValues(t, input)
	//
	if len(values) != 1 {
		t.Fatalf("parsing %q: expected 1 value, got %d", input, len(values))
	}
	//
	return values[0]
}

func checkTyping(t *testing.T, v Value, expected types.Type) {
	t.Helper()
	//
	if diff := cmp.Diff(expected, v.Typing); diff != "" {
		t.Errorf("typing mismatch (-expected +got):\n%s", diff)
	}
}

func checkLiteral(t *testing.T, v Value, kind SimpleKind, text string) {
	t.Helper()
	//
	if v.Literal == nil {
		t.Errorf("expected literal %s(%q), got none", kind, text)
	} else if v.Literal.Kind != kind || v.Literal.Text != text {
		t.Errorf("expected literal %s(%q), got %s(%q)",
			kind, text, v.Literal.Kind, v.Literal.Text)
	}
}

func checkRoundTrip(t *testing.T, input string) {
	t.Helper()
	//
	values := parseValues(t, input)
	//
	if values.String() != input {
		t.Errorf("round trip of %q produced %q", input, values.String())
	}
}

func checkParseErr(t *testing.T, input string, msg string) {
	t.Helper()
	//
	if _, err := ParseString(input); err == nil {
		t.Errorf("parsing %q: expected error %q", input, msg)
	} else if !strings.Contains(err.Error(), msg) {
		t.Errorf("parsing %q: got error %q, expected %q", input, err, msg)
	}
}
