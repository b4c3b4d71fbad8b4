package value

import (
	"strings"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/types"
	"github.com/chritchens/sophia/pkg/util/source"
)

// PrimValue is the payload of a literal value, with quotes stripped for
// chars and strings and escapes kept raw.
type PrimValue struct {
	// Kind of literal.
	Kind SimpleKind
	// Raw text of the literal.
	Text string
}

// String returns the canonical text of this literal.
func (p PrimValue) String() string {
	switch p.Kind {
	case Char:
		return "'" + p.Text + "'"
	case String:
		return "\"" + p.Text + "\""
	default:
		return p.Text
	}
}

// Value is a node of the typed value tree.  An application keeps its head
// as the first child and takes its name from it; atoms carry either a
// literal payload or a symbol name.
type Value struct {
	// Name of this value (symbol text, or the head symbol of an
	// application; empty when there is none).
	Name string
	// Literal payload (nil for symbols, keywords and applications).
	Literal *PrimValue
	// Primitive type tag of this value.
	Typing types.Type
	// Constituent values of an application, head first.
	Children []Value
	// Token this value was built from (the opening token for
	// applications).
	Token token.Token
}

// NewEmpty constructs the value of an empty literal token.
func NewEmpty(tok token.Token) (Value, error) {
	if tok.Kind != token.EmptyLiteral {
		return Value{}, source.NewParsingError(tok.Loc, "expected an empty literal")
	}
	//
	return Value{
		Literal: &PrimValue{Empty, "()"},
		Typing:  types.NewType(types.EmptyKind),
		Token:   tok,
	}, nil
}

// NewKeyword constructs the value of a definition keyword token, which is
// tagged Builtin.
func NewKeyword(tok token.Token) (Value, error) {
	if tok.Kind != token.Keyword {
		return Value{}, source.NewParsingError(tok.Loc, "expected a keyword")
	}
	//
	return Value{
		Name:   tok.Text,
		Typing: types.NewType(types.BuiltinKind),
		Token:  tok,
	}, nil
}

// NewUInt constructs the value of an unsigned number literal token.
func NewUInt(tok token.Token) (Value, error) {
	if tok.Kind != token.UIntLiteral {
		return Value{}, source.NewParsingError(tok.Loc, "expected a uint literal")
	}
	//
	return Value{
		Literal: &PrimValue{UInt, tok.Text},
		Typing:  types.NewType(types.UIntKind),
		Token:   tok,
	}, nil
}

// NewInt constructs the value of a signed integer literal token.
func NewInt(tok token.Token) (Value, error) {
	if tok.Kind != token.IntLiteral {
		return Value{}, source.NewParsingError(tok.Loc, "expected an int literal")
	}
	//
	return Value{
		Literal: &PrimValue{Int, tok.Text},
		Typing:  types.NewType(types.IntKind),
		Token:   tok,
	}, nil
}

// NewFloat constructs the value of a float literal token.
func NewFloat(tok token.Token) (Value, error) {
	if tok.Kind != token.FloatLiteral {
		return Value{}, source.NewParsingError(tok.Loc, "expected a float literal")
	}
	//
	return Value{
		Literal: &PrimValue{Float, tok.Text},
		Typing:  types.NewType(types.FloatKind),
		Token:   tok,
	}, nil
}

// NewChar constructs the value of a char literal token.
func NewChar(tok token.Token) (Value, error) {
	if tok.Kind != token.CharLiteral {
		return Value{}, source.NewParsingError(tok.Loc, "expected a char literal")
	}
	//
	return Value{
		Literal: &PrimValue{Char, tok.Text},
		Typing:  types.NewType(types.CharKind),
		Token:   tok,
	}, nil
}

// NewString constructs the value of a string literal token.
func NewString(tok token.Token) (Value, error) {
	if tok.Kind != token.StringLiteral {
		return Value{}, source.NewParsingError(tok.Loc, "expected a string literal")
	}
	//
	return Value{
		Literal: &PrimValue{String, tok.Text},
		Typing:  types.NewType(types.StringKind),
		Token:   tok,
	}, nil
}

// NewSymbol constructs the value of a symbol token.  Type symbols are
// tagged Type; value symbols are tagged Unknown, since their types are not
// known without inference.
func NewSymbol(tok token.Token) (Value, error) {
	var kind types.Kind
	//
	switch tok.Kind {
	case token.ValueSymbol:
		kind = types.UnknownKind
	case token.TypeSymbol:
		kind = types.TypeKind
	default:
		return Value{}, source.NewParsingError(tok.Loc, "expected a symbol")
	}
	//
	return Value{
		Name:   tok.Text,
		Typing: types.NewType(kind),
		Token:  tok,
	}, nil
}

// NewAtom constructs the value of any single non-form token.
func NewAtom(tok token.Token) (Value, error) {
	switch tok.Kind {
	case token.EmptyLiteral:
		return NewEmpty(tok)
	case token.Keyword:
		return NewKeyword(tok)
	case token.UIntLiteral:
		return NewUInt(tok)
	case token.IntLiteral:
		return NewInt(tok)
	case token.FloatLiteral:
		return NewFloat(tok)
	case token.CharLiteral:
		return NewChar(tok)
	case token.StringLiteral:
		return NewString(tok)
	case token.ValueSymbol, token.TypeSymbol:
		return NewSymbol(tok)
	case token.Comment:
		return Value{}, source.NewParsingError(tok.Loc, "unexpected comment token")
	case token.DocComment:
		return Value{}, source.NewParsingError(tok.Loc, "unexpected doc comment token")
	}
	//
	return Value{}, source.NewSyntacticError(tok.Loc, "expected a value")
}

// NewApp constructs an application value from a balanced token run, which
// must open with a form start and close with the matching form end.  The
// head becomes the first child, the application takes its name from the
// head, and the typing is the application of every child typing in order.
func NewApp(run token.Tokens) (Value, error) {
	if len(run) == 0 {
		return Value{}, &source.SyntacticError{Desc: "expected a form"}
	}
	//
	if len(run) < 2 || run[0].Kind != token.FormStart {
		return Value{}, source.NewSyntacticError(run[0].Loc, "expected a form")
	}
	//
	if run[len(run)-1].Kind != token.FormEnd {
		return Value{}, source.NewSyntacticError(run[0].Loc, "unclosed form")
	}
	//
	var children []Value
	//
	i := 1
	for i < len(run)-1 {
		tok := run[i]
		//
		if tok.Kind == token.FormStart {
			j, ok := matchingEnd(run, i)
			if !ok {
				return Value{}, source.NewSyntacticError(tok.Loc, "unclosed form")
			}
			//
			child, err := NewApp(run[i : j+1])
			if err != nil {
				return Value{}, err
			}
			//
			children = append(children, child)
			i = j + 1
			//
			continue
		}
		//
		child, err := NewAtom(tok)
		if err != nil {
			return Value{}, err
		}
		//
		children = append(children, child)
		i++
	}
	//
	if len(children) == 0 {
		return Value{}, source.NewSyntacticError(run[0].Loc, "empty form")
	}
	//
	typings := make([]types.Type, len(children))
	for i, c := range children {
		typings[i] = c.Typing
	}
	//
	return Value{
		Name:     children[0].Name,
		Typing:   types.NewApp(typings...),
		Children: children,
		Token:    run[0],
	}, nil
}

// Find the index of the form end matching the form start at a given index.
func matchingEnd(run token.Tokens, start int) (int, bool) {
	depth := 0
	//
	for i := start; i < len(run); i++ {
		switch run[i].Kind {
		case token.FormStart:
			depth++
		case token.FormEnd:
			depth--
			//
			if depth == 0 {
				return i, true
			}
		}
	}
	//
	return 0, false
}

// IsApp checks whether this value is an application.
func (v Value) IsApp() bool {
	return len(v.Children) > 0
}

// Loc returns the source location of this value.
func (v Value) Loc() source.Loc {
	return v.Token.Loc
}

// File returns the name of the file this value originates from, which is
// empty for raw string input.
func (v Value) File() string {
	return v.Token.Loc.File
}

// Clone returns a structural copy of this value sharing nothing with the
// original.
func (v Value) Clone() Value {
	clone := v
	clone.Typing = v.Typing.Clone()
	//
	if v.Literal != nil {
		lit := *v.Literal
		clone.Literal = &lit
	}
	//
	if v.Children != nil {
		clone.Children = make([]Value, len(v.Children))
		//
		for i, c := range v.Children {
			clone.Children[i] = c.Clone()
		}
	}
	//
	return clone
}

// String returns the canonical text of this value, such that re-parsing it
// yields an identical value.
func (v Value) String() string {
	if v.IsApp() {
		parts := make([]string, len(v.Children))
		//
		for i, c := range v.Children {
			parts[i] = c.String()
		}
		//
		return "(" + strings.Join(parts, " ") + ")"
	}
	//
	if v.Literal != nil {
		return v.Literal.String()
	}
	//
	return v.Name
}
