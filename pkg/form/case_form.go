package form

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// CaseForm scrutinizes a subject value against one or more match clauses,
// as in "(case x (match 0 zero) (match n (succ n)))".
type CaseForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Subject being scrutinized.
	Subject Element
	// Matches tried against the subject in source order.
	Matches []*MatchForm
}

// NewCaseForm validates a generic form as a case form.
func NewCaseForm(form *Form) (*CaseForm, error) {
	if form.Head.Text() != "case" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a case keyword")
	}
	//
	if len(form.Tail) < 2 {
		return nil, source.NewSyntacticError(form.Loc(), "expected a subject and at least one match")
	}
	//
	c := &CaseForm{Tokens: form.Tokens}
	//
	subject, err := newSubject(form.Tail[0])
	if err != nil {
		return nil, err
	}
	//
	c.Subject = subject
	//
	for _, e := range form.Tail[1:] {
		nested, ok := e.(*Form)
		if !ok {
			return nil, source.NewSyntacticError(e.Loc(), "expected a match form")
		}
		//
		match, err := NewMatchForm(nested)
		if err != nil {
			return nil, err
		}
		//
		c.Matches = append(c.Matches, match)
	}
	//
	return c, nil
}

// ParseCaseForm validates the form of a given raw string as a case form.
func ParseCaseForm(s string) (*CaseForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewCaseForm(form)
}

// Loc returns the source location of this form.
func (c *CaseForm) Loc() source.Loc {
	return c.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (c *CaseForm) File() string {
	return c.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (c *CaseForm) String() string {
	parts := make([]string, len(c.Matches)+2)
	parts[0] = "case"
	parts[1] = c.Subject.String()
	//
	for i, m := range c.Matches {
		parts[i+2] = m.String()
	}
	//
	return "(" + strings.Join(parts, " ") + ")"
}

// newSubject accepts a tail element in subject position.  Simple values
// other than keywords pass through; nested forms resolve by trying, in
// order, a product form and an application form.
func newSubject(e Element) (Element, error) {
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
		if f, err := NewAppForm(v); err == nil {
			return f, nil
		}
		//
		return nil, source.NewSyntacticError(v.Loc(), "unexpected form")
	}
	//
	return nil, source.NewSyntacticError(e.Loc(), "expected a value")
}

// MatchForm is one clause of a case form, a pattern and a body, as in
// "(match 0 zero)".
type MatchForm struct {
	// Tokens this form was built from.
	Tokens token.Tokens
	// Pattern tried against the subject.
	Pattern value.SimpleValue
	// Body produced on a successful match.
	Body Element
}

// NewMatchForm validates a generic form as a match form.
func NewMatchForm(form *Form) (*MatchForm, error) {
	if form.Head.Text() != "match" {
		return nil, source.NewSyntacticError(form.Loc(), "expected a match keyword")
	}
	//
	if len(form.Tail) != 2 {
		return nil, source.NewSyntacticError(form.Loc(), "expected a pattern and a body")
	}
	//
	m := &MatchForm{Tokens: form.Tokens}
	//
	switch v := form.Tail[0].(type) {
	case value.SimpleValue:
		switch v.Kind {
		case value.Keyword:
			return nil, source.NewSyntacticError(v.Loc(), "unexpected keyword")
		case value.TypePathSymbol:
			return nil, source.NewSyntacticError(v.Loc(), "unexpected value")
		}
		//
		m.Pattern = v
	default:
		return nil, source.NewSyntacticError(form.Tail[0].Loc(), "unexpected form")
	}
	//
	body, err := newBody(form.Tail[1])
	if err != nil {
		return nil, err
	}
	//
	m.Body = body
	//
	return m, nil
}

// ParseMatchForm validates the form of a given raw string as a match form.
func ParseMatchForm(s string) (*MatchForm, error) {
	form, err := FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return NewMatchForm(form)
}

// Loc returns the source location of this form.
func (m *MatchForm) Loc() source.Loc {
	return m.Tokens[0].Loc
}

// File returns the name of the file this form originates from.
func (m *MatchForm) File() string {
	return m.Tokens[0].Loc.File
}

// String returns the canonical text of this form.
func (m *MatchForm) String() string {
	return "(match " + m.Pattern.String() + " " + m.Body.String() + ")"
}
