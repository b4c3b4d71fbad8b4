// Package form groups tokens into generic forms and validates them into
// specific typed nodes.  A generic Form is a head simple value applied to
// an ordered tail of elements; each specific form (fun, type, sig, attrs,
// prod, sum, app, let, case, match) enforces one fixed grammar over that
// shape.  Every node prints back to canonical source text, such that
// parsing and printing are mutual inverses.
package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// Element is a single constituent of a form tail, either a simple value or
// a nested form, validated or not.
type Element interface {
	// String returns the canonical text of this element.
	String() string
	// Loc returns the source location of this element.
	Loc() source.Loc
	// File returns the name of the file this element originates from.
	File() string
}

// Form is a generic parenthesized node prior to validation.
type Form struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Head simple value naming the form.
	Head value.SimpleValue
	// Tail elements in source order.
	Tail []Element
}

// FromTokens groups a balanced token run into a generic form.  The run
// must open with a form start, close with the matching form end, and
// contain nothing beyond it.  Comments must have been filtered upstream.
func FromTokens(tokens token.Tokens) (*Form, error) {
	if len(tokens) == 0 {
		return nil, &source.SyntacticError{Desc: "expected a form"}
	}
	//
	switch tokens[0].Kind {
	case token.FormStart:
		// ok
	case token.FormEnd:
		return nil, source.NewSyntacticError(tokens[0].Loc, "unexpected end of form")
	default:
		return nil, source.NewSyntacticError(tokens[0].Loc, "expected a form")
	}
	//
	end, ok := matchingEnd(tokens, 0)
	if !ok {
		return nil, source.NewSyntacticError(tokens[0].Loc, "unclosed form")
	}
	//
	if end != len(tokens)-1 {
		return nil, source.NewSyntacticError(tokens[end+1].Loc, "unexpected remainder")
	}
	//
	var elements []Element
	//
	i := 1
	for i < end {
		tok := tokens[i]
		//
		if tok.Kind == token.FormStart {
			j, ok := matchingEnd(tokens, i)
			if !ok {
				return nil, source.NewSyntacticError(tok.Loc, "unclosed form")
			}
			//
			nested, err := FromTokens(tokens[i : j+1])
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, nested)
			i = j + 1
			//
			continue
		}
		//
		sv, err := value.NewSimpleValue(tok)
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, sv)
		i++
	}
	//
	if len(elements) == 0 {
		return nil, source.NewSyntacticError(tokens[0].Loc, "expected a form head")
	}
	//
	head, ok := elements[0].(value.SimpleValue)
	if !ok {
		return nil, source.NewSyntacticError(elements[0].Loc(), "expected a form head")
	}
	//
	return &Form{
		Tokens: tokens,
		Head:   head,
		Tail:   elements[1:],
	}, nil
}

// FromString groups the token run of a given raw string into a generic
// form.
func FromString(s string) (*Form, error) {
	tokens, err := token.FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return FromTokens(tokens.WithoutComments())
}

// Find the index of the form end matching the form start at a given index.
func matchingEnd(tokens token.Tokens, start int) (int, bool) {
	depth := 0
	//
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case token.FormStart:
			depth++
		case token.FormEnd:
			depth--
			//
			if depth == 0 {
				return i, true
			}
		}
	}
	//
	return 0, false
}

// Loc returns the source location of this form.
func (f *Form) Loc() source.Loc {
	return f.Tokens[0].Loc
}

// File returns the name of the file this form originates from, which is
// empty for raw string input.
func (f *Form) File() string {
	return f.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (f *Form) String() string {
	parts := make([]string, len(f.Tail)+1)
	parts[0] = f.Head.String()
	//
	for i, e := range f.Tail {
		parts[i+1] = e.String()
	}
	//
	return "(" + strings.Join(parts, " ") + ")"
}
