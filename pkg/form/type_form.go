package form

import (
	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// TypeForm is a type definition, binding an unqualified type symbol to a
// type expression, as in "(type T (Fun A B))".
type TypeForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Name being defined, an unqualified type symbol.
	Name value.SimpleValue
	// Value bound to the name.
	Value TypeValue
}

// NewTypeForm validates a generic form as a type form.
func NewTypeForm(form *Form) (*TypeForm, error) {
	if form.Head.Text() != "type" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a type keyword")
	}
	//
	if len(form.Tail) != 2 {
		return nil, source.NewSyntacticError(form.Loc(), "expected a name and a type")
	}
	//
	t := &TypeForm{Tokens: form.Tokens}
	//
	switch v := form.Tail[0].(type) {
	case value.SimpleValue:
		if v.Kind != value.TypeSymbol {
			return nil, source.NewSyntacticError(v.Loc(), "expected an unqualified type symbol")
		}
		//
		t.Name = v
	default:
		return nil, source.NewSyntacticError(form.Tail[0].Loc(), "unexpected form")
	}
	//
	tv, err := NewTypeValue(form.Tail[1])
	if err != nil {
		return nil, err
	}
	//
	t.Value = tv
	//
	return t, nil
}

// ParseTypeForm validates the form of a given raw string as a type form.
func ParseTypeForm(s string) (*TypeForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewTypeForm(form)
}

// IsEmptyType checks whether the defined type is the empty type.
func (t *TypeForm) IsEmptyType() bool {
	return t.Value.Kind == EmptyType
}

// IsAtomicType checks whether the defined type is the atomic type.
func (t *TypeForm) IsAtomicType() bool {
	return t.Value.Kind == AtomicType
}

// IsTypeKeyword checks whether the defined type is a reserved type keyword
// other than Empty and Atomic.
func (t *TypeForm) IsTypeKeyword() bool {
	return t.Value.Kind == KeywordType
}

// IsTypeSymbol checks whether the defined type is an unqualified type
// symbol.
func (t *TypeForm) IsTypeSymbol() bool {
	return t.Value.Kind == SymbolType
}

// IsTypesForm checks whether the defined type is a form of types.
func (t *TypeForm) IsTypesForm() bool {
	return t.Value.Kind == FormType
}

// Loc returns the source location of this form.
func (t *TypeForm) Loc() source.Loc {
	return t.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (t *TypeForm) File() string {
	return t.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (t *TypeForm) String() string {
	return "(type " + t.Name.String() + " " + t.Value.String() + ")"
}
