package form

import (
	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// SigForm is a signature declaration, binding an unqualified value symbol
// to a type expression, as in "(sig t Char)".
type SigForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Name being declared, an unqualified value symbol.
	Name value.SimpleValue
	// Value of the declared type.
	Value TypeValue
}

// NewSigForm validates a generic form as a signature form.
func NewSigForm(form *Form) (*SigForm, error) {
	if form.Head.Text() != "sig" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a sig keyword")
	}
	//
	if len(form.Tail) != 2 {
		return nil, source.NewSyntacticError(form.Loc(), "expected a name and a type")
	}
	//
	sig := &SigForm{Tokens: form.Tokens}
	//
	switch v := form.Tail[0].(type) {
	case value.SimpleValue:
		if v.Kind != value.ValueSymbol || v.IsQualified() {
			return nil, source.NewSyntacticError(v.Loc(), "expected an unqualified value symbol")
		}
		//
		sig.Name = v
	default:
		return nil, source.NewSyntacticError(form.Tail[0].Loc(), "unexpected form")
	}
	//
	tv, err := NewTypeValue(form.Tail[1])
	if err != nil {
		return nil, err
	}
	//
	sig.Value = tv
	//
	return sig, nil
}

// ParseSigForm validates the form of a given raw string as a signature
// form.
func ParseSigForm(s string) (*SigForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewSigForm(form)
}

// IsEmptyType checks whether the declared type is the empty type.
func (s *SigForm) IsEmptyType() bool {
	return s.Value.Kind == EmptyType
}

// IsAtomicType checks whether the declared type is the atomic type.
func (s *SigForm) IsAtomicType() bool {
	return s.Value.Kind == AtomicType
}

// IsTypeKeyword checks whether the declared type is a reserved type keyword
// other than Empty and Atomic.
func (s *SigForm) IsTypeKeyword() bool {
	return s.Value.Kind == KeywordType
}

// IsTypeSymbol checks whether the declared type is an unqualified type
// symbol.
func (s *SigForm) IsTypeSymbol() bool {
	return s.Value.Kind == SymbolType
}

// IsTypesForm checks whether the declared type is a form of types.
func (s *SigForm) IsTypesForm() bool {
	return s.Value.Kind == FormType
}

// Loc returns the source location of this form.
func (s *SigForm) Loc() source.Loc {
	return s.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (s *SigForm) File() string {
	return s.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (s *SigForm) String() string {
	return "(sig " + s.Name.String() + " " + s.Value.String() + ")"
}
