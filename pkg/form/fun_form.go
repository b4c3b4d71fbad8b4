package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// FunForm is an anonymous function, a parameter specification followed by
// a body, as in "(fun (prod a b) (math.+ (prod a b)))".  Parameters are
// unqualified symbols: none for an empty literal, one for a bare symbol,
// or two and more for a product of symbols.
type FunForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Params of the function in source order.
	Params []value.SimpleValue
	// Body of the function.
	Body Element
}

// NewFunForm validates a generic form as a function form.
func NewFunForm(form *Form) (*FunForm, error) {
	if form.Head.Text() != "fun" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a fun keyword")
	}
	//
	if len(form.Tail) != 2 {
		return nil, source.NewSyntacticError(form.Loc(), "expected parameters and a body")
	}
	//
	fun := &FunForm{Tokens: form.Tokens}
	//
	switch v := form.Tail[0].(type) {
	case value.SimpleValue:
		switch v.Kind {
		case value.Empty:
			// no parameters
		case value.ValueSymbol, value.TypeSymbol:
			if v.IsQualified() {
				return nil, source.NewSyntacticError(v.Loc(), "expected an unqualified symbol")
			}
			//
			fun.Params = []value.SimpleValue{v}
		case value.TypePathSymbol:
			return nil, source.NewSyntacticError(v.Loc(), "expected an unqualified symbol")
		default:
			return nil, source.NewSyntacticError(v.Loc(), "unexpected function parameters")
		}
	case *Form:
		prod, err := NewProdForm(v)
		if err != nil {
			return nil, source.NewSyntacticError(v.Loc(), "expected a product of symbols")
		}
		//
		if len(prod.Values) < 2 {
			return nil, source.NewSyntacticError(v.Loc(), "expected a product of at least two symbols")
		}
		//
		for _, pv := range prod.Values {
			sym, ok := pv.(value.SimpleValue)
			if !ok || !sym.IsSymbol() {
				return nil, source.NewSyntacticError(pv.Loc(), "expected a product of symbols")
			}
			//
			if sym.IsQualified() {
				return nil, source.NewSyntacticError(sym.Loc(), "expected an unqualified symbol")
			}
			//
			fun.Params = append(fun.Params, sym)
		}
	}
	//
	body, err := newBody(form.Tail[1])
	if err != nil {
		return nil, err
	}
	//
	fun.Body = body
	//
	return fun, nil
}

// ParseFunForm validates the form of a given raw string as a function
// form.
func ParseFunForm(s string) (*FunForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewFunForm(form)
}

// ParamsString returns the canonical text of the parameter specification:
// an empty literal for no parameters, a bare symbol for one, and a product
// of symbols otherwise.
func (f *FunForm) ParamsString() string {
	switch len(f.Params) {
	case 0:
		return "()"
	case 1:
		return f.Params[0].String()
	default:
		parts := make([]string, len(f.Params)+1)
		parts[0] = "prod"
		//
		for i, p := range f.Params {
			parts[i+1] = p.String()
		}
		//
		return "(" + strings.Join(parts, " ") + ")"
	}
}

// Loc returns the source location of this form.
func (f *FunForm) Loc() source.Loc {
	return f.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (f *FunForm) File() string {
	return f.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (f *FunForm) String() string {
	return "(fun " + f.ParamsString() + " " + f.Body.String() + ")"
}

// newBody accepts a tail element in body position.  Simple values other
// than keywords pass through, qualified symbols included; nested forms
// resolve by trying, in order, a type form, a product form, a let form, a
// case form and an application form, committing to the first grammar that
// succeeds.
func newBody(e Element) (Element, error) {
	switch v := e.(type) {
	case value.SimpleValue:
		if v.Kind == value.Keyword {
			return nil, source.NewSyntacticError(v.Loc(), "unexpected keyword")
		}
		//
		return v, nil
	case *Form:
		if f, err := NewTypeForm(v); err == nil {
			return f, nil
		}
		//
		if f, err := NewProdForm(v); err == nil {
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
		return nil, source.NewSyntacticError(v.Loc(), "expected a type form, a let form or an application form")
	}
	//
	return nil, source.NewSyntacticError(e.Loc(), "expected a value")
}
