package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// ProdForm is a product of one or more values, as in "(prod a b 10)".
type ProdForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Values of the product in source order.
	Values []Element
}

// NewProdForm validates a generic form as a product form.
func NewProdForm(form *Form) (*ProdForm, error) {
	if form.Head.Text() != "prod" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a prod keyword")
	}
	//
	if len(form.Tail) == 0 {
		return nil, source.NewSyntacticError(form.Loc(), "expected at least one value")
	}
	//
	prod := &ProdForm{Tokens: form.Tokens}
	//
	for _, e := range form.Tail {
		v, err := newElement(e)
		if err != nil {
			return nil, err
		}
		//
		prod.Values = append(prod.Values, v)
	}
	//
	return prod, nil
}

// ParseProdForm validates the form of a given raw string as a product
// form.
func ParseProdForm(s string) (*ProdForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewProdForm(form)
}

// Loc returns the source location of this form.
func (p *ProdForm) Loc() source.Loc {
	return p.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (p *ProdForm) File() string {
	return p.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (p *ProdForm) String() string {
	parts := make([]string, len(p.Values)+1)
	parts[0] = "prod"
	//
	for i, v := range p.Values {
		parts[i+1] = v.String()
	}
	//
	return "(" + strings.Join(parts, " ") + ")"
}

// newElement accepts a tail element in value position.  Simple values
// other than keywords pass through; nested forms resolve by trying, in
// order, a product form, a function form, a let form, a case form and an
// application form, committing to the first grammar that succeeds.
func newElement(e Element) (Element, error) {
	switch v := e.(type) {
	case value.SimpleValue:
		if v.Kind == value.Keyword {
			return nil, source.NewSyntacticError(v.Loc(), "unexpected keyword")
		}
		//
		return v, nil
	case *Form:
		if f, err := NewProdForm(v); err == nil {
			return f, nil
		}
		//
		if f, err := NewFunForm(v); err == nil {
			return f, nil
		}
		//
		if f, err := NewLetForm(v); err == nil {
			return f, nil
		}
		//
		if f, err := NewCaseForm(v); err == nil {
			return f, nil
		}
		//
		if f, err := NewAppForm(v); err == nil {
			return f, nil
		}
		//
		return nil, source.NewSyntacticError(v.Loc(), "unexpected form")
	}
	//
	return nil, source.NewSyntacticError(e.Loc(), "expected a value")
}
