package form

import (
	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
)

// SumForm injects a single value into a sum, as in "(sum (prod 10 32))".
type SumForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Value injected into the sum.
	Value Element
}

// NewSumForm validates a generic form as a sum form.
func NewSumForm(form *Form) (*SumForm, error) {
	if form.Head.Text() != "sum" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a sum keyword")
	}
	//
	if len(form.Tail) != 1 {
		return nil, source.NewSyntacticError(form.Loc(), "expected a value")
	}
	//
	v, err := newElement(form.Tail[0])
	if err != nil {
		return nil, err
	}
	//
	return &SumForm{
		Tokens: form.Tokens,
		Value:  v,
	}, nil
}

// ParseSumForm validates the form of a given raw string as a sum form.
func ParseSumForm(s string) (*SumForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewSumForm(form)
}

// Loc returns the source location of this form.
func (s *SumForm) Loc() source.Loc {
	return s.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (s *SumForm) File() string {
	return s.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (s *SumForm) String() string {
	return "(sum " + s.Value.String() + ")"
}
