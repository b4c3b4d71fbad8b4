package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// AttrsForm attaches a product of attribute names to a value or type name,
// as in "(attrs x (prod attr1 attr2))".  Shape violations are syntactic;
// a second argument which is not a product of symbols is semantic, since
// the shape is a well-formed application with the wrong meaning.
type AttrsForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Name the attributes attach to, an unqualified symbol.
	Name value.SimpleValue
	// Values of the attached attributes in source order.
	Values []value.SimpleValue
}

// NewAttrsForm validates a generic form as an attributes form.
func NewAttrsForm(form *Form) (*AttrsForm, error) {
	if form.Head.Text() != "attrs" {
		return nil, source.NewSyntacticError(form.Loc(), "expected an attrs keyword")
	}
	//
	if len(form.Tail) != 2 {
		return nil, source.NewSyntacticError(form.Loc(), "expected a name and a product of symbols")
	}
	//
	attrs := &AttrsForm{Tokens: form.Tokens}
	//
	switch v := form.Tail[0].(type) {
	case value.SimpleValue:
		if !v.IsSymbol() || v.IsQualified() {
			return nil, source.NewSyntacticError(v.Loc(), "expected an unqualified symbol")
		}
		//
		attrs.Name = v
	default:
		return nil, source.NewSyntacticError(form.Tail[0].Loc(), "unexpected form")
	}
	//
	nested, ok := form.Tail[1].(*Form)
	if !ok {
		return nil, source.NewSemanticError(form.Tail[1].Loc(), "expected a product of symbols")
	}
	//
	prod, err := NewProdForm(nested)
	if err != nil {
		return nil, source.NewSemanticError(nested.Loc(), "expected a product of symbols")
	}
	//
	for _, pv := range prod.Values {
		sym, ok := pv.(value.SimpleValue)
		if !ok || !sym.IsSymbol() || sym.IsQualified() {
			return nil, source.NewSemanticError(pv.Loc(), "expected a symbol")
		}
		//
		attrs.Values = append(attrs.Values, sym)
	}
	//
	return attrs, nil
}

// ParseAttrsForm validates the form of a given raw string as an attributes
// form.
func ParseAttrsForm(s string) (*AttrsForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewAttrsForm(form)
}

// Loc returns the source location of this form.
func (a *AttrsForm) Loc() source.Loc {
	return a.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (a *AttrsForm) File() string {
	return a.Tokens[0].Loc.File
}

// String returns the canonical text of this form, which always rewraps the
// attribute names in a product.
func (a *AttrsForm) String() string {
	parts := make([]string, len(a.Values))
	//
	for i, v := range a.Values {
		parts[i] = v.String()
	}
	//
	return "(attrs " + a.Name.String() + " (prod " + strings.Join(parts, " ") + "))"
}
