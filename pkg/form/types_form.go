package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// TypeValueKind identifies the classification of a type expression.
type TypeValueKind int

const (
	// EmptyType is the reserved "Empty" keyword.
	EmptyType TypeValueKind = iota
	// AtomicType is the reserved "Atomic" keyword.
	AtomicType
	// KeywordType is any other reserved type keyword.
	KeywordType
	// SymbolType is an unqualified type symbol.
	SymbolType
	// PathSymbolType is a qualified type symbol.
	PathSymbolType
	// FormType is a nested form of types.
	FormType
)

// TypeValue is a classified type expression, either a simple type value or
// a nested form of types.
type TypeValue struct {
	// Kind of this type expression.
	Kind TypeValueKind
	// Simple value of a non-form type expression.
	Simple value.SimpleValue
	// Nested form of types of a form type expression, nil otherwise.
	Form *TypesForm
}

// NewTypeValue classifies a tail element as a type expression.
func NewTypeValue(e Element) (TypeValue, error) {
	switch v := e.(type) {
	case value.SimpleValue:
		switch v.Kind {
		case value.TypeKeyword:
			switch v.Text() {
			case "Empty":
				return TypeValue{Kind: EmptyType, Simple: v}, nil
			case "Atomic":
				return TypeValue{Kind: AtomicType, Simple: v}, nil
			default:
				return TypeValue{Kind: KeywordType, Simple: v}, nil
			}
		case value.TypeSymbol:
			return TypeValue{Kind: SymbolType, Simple: v}, nil
		case value.TypePathSymbol:
			return TypeValue{Kind: PathSymbolType, Simple: v}, nil
		}
		//
		return TypeValue{}, source.NewSyntacticError(v.Loc(), "unexpected value")
	case *Form:
		types, err := NewTypesForm(v)
		if err != nil {
			return TypeValue{}, source.NewSyntacticError(v.Loc(), "expected a form of types")
		}
		//
		return TypeValue{Kind: FormType, Form: types}, nil
	}
	//
	return TypeValue{}, source.NewSyntacticError(e.Loc(), "unexpected value")
}

// String returns the canonical text of this type expression.
func (t TypeValue) String() string {
	if t.Kind == FormType {
		return t.Form.String()
	}
	//
	return t.Simple.String()
}

// TypesForm is a parenthesized application of types, a type keyword or
// type symbol applied to one or more type expressions, as in
// "(Fun moduleX.X Char (Pair A B))".
type TypesForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Head type keyword or type symbol of the form.
	Head value.SimpleValue
	// Tail type expressions in source order.
	Tail []TypeValue
}

// NewTypesForm validates a generic form as a form of types.
func NewTypesForm(form *Form) (*TypesForm, error) {
	switch form.Head.Kind {
	case value.TypeKeyword, value.TypeSymbol, value.TypePathSymbol:
		// ok
	default:
		return nil, source.NewSyntacticError(form.Head.Loc(), "expected a type keyword or a type symbol")
	}
	//
	if len(form.Tail) == 0 {
		return nil, source.NewSyntacticError(form.Loc(), "expected at least one type")
	}
	//
	types := &TypesForm{
		Tokens: form.Tokens,
		Head:   form.Head,
	}
	//
	for _, e := range form.Tail {
		tv, err := NewTypeValue(e)
		if err != nil {
			return nil, err
		}
		//
		types.Tail = append(types.Tail, tv)
	}
	//
	return types, nil
}

// ParseTypesForm validates the form of a given raw string as a form of
// types.
func ParseTypesForm(s string) (*TypesForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewTypesForm(form)
}

// Loc returns the source location of this form.
func (t *TypesForm) Loc() source.Loc {
	return t.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (t *TypesForm) File() string {
	return t.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (t *TypesForm) String() string {
	parts := make([]string, len(t.Tail)+1)
	parts[0] = t.Head.String()
	//
	for i, tv := range t.Tail {
		parts[i+1] = tv.String()
	}
	//
	return "(" + strings.Join(parts, " ") + ")"
}
