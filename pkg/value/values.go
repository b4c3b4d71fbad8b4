package value

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
)

// Values is the ordered sequence of top-level values for one or more
// source files.
type Values []Value

// FromTokens builds the top-level value sequence from a token stream.
// Comments must have been filtered beforehand; encountering one here is a
// defect of an earlier stage.  A nesting counter groups balanced token runs
// into application values, whilst atoms outside any form become standalone
// values.
func FromTokens(tokens token.Tokens) (Values, error) {
	var (
		values    Values
		form      token.Tokens
		formCount int
	)
	//
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Comment:
			return nil, source.NewParsingError(tok.Loc, "unexpected comment token")
		case token.DocComment:
			return nil, source.NewParsingError(tok.Loc, "unexpected doc comment token")
		case token.FormStart:
			formCount++
			form = append(form, tok)
		case token.FormEnd:
			if formCount == 0 {
				return nil, source.NewSyntacticError(tok.Loc, "unexpected end of form")
			}
			//
			formCount--
			form = append(form, tok)
			// A counter returning to zero closes one top-level form.
			if formCount == 0 {
				v, err := NewApp(form)
				if err != nil {
					return nil, err
				}
				//
				values = append(values, v)
				form = nil
			}
		default:
			if formCount != 0 {
				form = append(form, tok)
				continue
			}
			//
			v, err := NewAtom(tok)
			if err != nil {
				return nil, err
			}
			//
			values = append(values, v)
		}
	}
	//
	if formCount != 0 {
		return nil, source.NewSyntacticError(form[0].Loc, "unclosed form")
	}
	//
	return values, nil
}

// ParseString builds the value sequence for a given raw string.
func ParseString(s string) (Values, error) {
	tokens, err := token.FromString(s)
	if err != nil {
		return nil, err
	}
	//
	return FromTokens(tokens.WithoutComments())
}

// ParseFile builds the value sequence for a given source file.
func ParseFile(path string) (Values, error) {
	tokens, err := token.FromFile(path)
	if err != nil {
		return nil, err
	}
	//
	return FromTokens(tokens.WithoutComments())
}

// ParseFiles builds one value sequence for a given set of source files,
// concatenated in argument order.  Every value keeps its own originating
// file.
func ParseFiles(paths ...string) (Values, error) {
	var values Values
	//
	for _, path := range paths {
		log.Debugf("including source file %s", path)
		//
		vs, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		//
		values = append(values, vs...)
	}
	//
	return values, nil
}

// String returns the canonical text of this sequence, one value per line.
func (vs Values) String() string {
	parts := make([]string, len(vs))
	//
	for i, v := range vs {
		parts[i] = v.String()
	}
	//
	return strings.Join(parts, "\n")
}
