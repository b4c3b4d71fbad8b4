package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// AppForm is the application of a value symbol or definition keyword to
// zero or more arguments, as in "(math.+ 1 2)" or "(def pi 3.14)".
type AppForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Name of the applied symbol or keyword.
	Name value.SimpleValue
	// Args applied to the name in source order.
	Args []Element
}

// NewAppForm validates a generic form as an application form.
func NewAppForm(form *Form) (*AppForm, error) {
	switch form.Head.Kind {
	case value.ValueSymbol, value.Keyword:
		// ok
	default:
		return nil, source.NewSyntacticError(form.Head.Loc(), "expected a value symbol")
	}
	//
	app := &AppForm{
		Tokens: form.Tokens,
		Name:   form.Head,
	}
	//
	for _, e := range form.Tail {
		v, err := newElement(e)
		if err != nil {
			return nil, err
		}
		//
		app.Args = append(app.Args, v)
	}
	//
	return app, nil
}

// ParseAppForm validates the form of a given raw string as an application
// form.
func ParseAppForm(s string) (*AppForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewAppForm(form)
}

// Loc returns the source location of this form.
func (a *AppForm) Loc() source.Loc {
	return a.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (a *AppForm) File() string {
	return a.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (a *AppForm) String() string {
	parts := make([]string, len(a.Args)+1)
	parts[0] = a.Name.String()
	//
	for i, v := range a.Args {
		parts[i+1] = v.String()
	}
	//
	return "(" + strings.Join(parts, " ") + ")"
}
