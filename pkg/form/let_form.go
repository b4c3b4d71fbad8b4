package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
)

// LetForm is a sequence of local definitions followed by a body, as in
// "(let (sig x Int) (app x 10) x)".
type LetForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Defs preceding the body in source order.
	Defs []Element
	// Body of the let.
	Body Element
}

// NewLetForm validates a generic form as a let form.
func NewLetForm(form *Form) (*LetForm, error) {
	if form.Head.Text() != "let" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a let keyword")
	}
	//
	if len(form.Tail) == 0 {
		return nil, source.NewSyntacticError(form.Loc(), "expected a body")
	}
	//
	let := &LetForm{Tokens: form.Tokens}
	//
	for _, e := range form.Tail[:len(form.Tail)-1] {
		def, err := newDef(e)
		if err != nil {
			return nil, err
		}
		//
		let.Defs = append(let.Defs, def)
	}
	//
	body, err := newBody(form.Tail[len(form.Tail)-1])
	if err != nil {
		return nil, err
	}
	//
	let.Body = body
	//
	return let, nil
}

// ParseLetForm validates the form of a given raw string as a let form.
func ParseLetForm(s string) (*LetForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewLetForm(form)
}

// Loc returns the source location of this form.
func (l *LetForm) Loc() source.Loc {
	return l.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (l *LetForm) File() string {
	return l.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (l *LetForm) String() string {
	parts := make([]string, len(l.Defs)+2)
	parts[0] = "let"
	//
	for i, def := range l.Defs {
		parts[i+1] = def.String()
	}
	//
	parts[len(parts)-1] = l.Body.String()
	//
	return "(" + strings.Join(parts, " ") + ")"
}

// newDef accepts a tail element in definition position, which must be a
// nested form resolving, in order, as a type form, a signature form, an
// attributes form or an application form.
func newDef(e Element) (Element, error) {
	nested, ok := e.(*Form)
	if !ok {
		return nil, source.NewSyntacticError(e.Loc(), "expected a definition form")
	}
	//
	if f, err := NewTypeForm(nested); err == nil {
		return f, nil
	}
	//
	if f, err := NewSigForm(nested); err == nil {
		return f, nil
	}
	//
	if f, err := NewAttrsForm(nested); err == nil {
		return f, nil
	}
	//
	if f, err := NewAppForm(nested); err == nil {
		return f, nil
	}
	//
	return nil, source.NewSyntacticError(nested.Loc(), "expected a definition form")
}
