// Package value builds the typed value trees of the front end.  A
// SimpleValue classifies a single token; a Value is a tree node carrying a
// primitive type tag; Values is the sequence of top-level nodes for one or
// more source files.
package value

import (
	"github.com/chritchens/sophia/pkg/syntax"
	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
)

// SimpleKind identifies the semantic class of a simple value.
type SimpleKind int

const (
	// Empty is the empty literal "()".
	Empty SimpleKind = iota
	// Keyword is a reserved definition keyword.
	Keyword
	// TypeKeyword is a reserved type keyword, such as "UInt".
	TypeKeyword
	// ValueSymbol is a symbol in the value namespace, qualified or not.
	ValueSymbol
	// TypeSymbol is an unqualified symbol in the type namespace.
	TypeSymbol
	// TypePathSymbol is a qualified symbol in the type namespace.
	TypePathSymbol
	// UInt is an unsigned number literal.
	UInt
	// Int is a sign-led integer literal.
	Int
	// Float is a float literal.
	Float
	// Char is a char literal.
	Char
	// String is a string literal.
	String
)

// String returns a human readable name for a given kind.
func (k SimpleKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Keyword:
		return "keyword"
	case TypeKeyword:
		return "type keyword"
	case ValueSymbol:
		return "value symbol"
	case TypeSymbol:
		return "type symbol"
	case TypePathSymbol:
		return "type path symbol"
	case UInt:
		return "uint"
	case Int:
		return "int"
	case Float:
		return "float"
	case Char:
		return "char"
	case String:
		return "string"
	}
	//
	return "unknown"
}

// SimpleValue is the semantic classification of a single token.  Symbol
// tokens split three ways: value symbols keep one kind whether qualified or
// not, whereas type symbols divide into reserved keywords, unqualified
// symbols and path symbols.
type SimpleValue struct {
	// Semantic class of this value.
	Kind SimpleKind
	// Token this value was built from.
	Token token.Token
}

// NewSimpleValue classifies a given token, or fails when the token cannot
// stand alone as a value.
func NewSimpleValue(tok token.Token) (SimpleValue, error) {
	switch tok.Kind {
	case token.EmptyLiteral:
		return SimpleValue{Empty, tok}, nil
	case token.Keyword:
		return SimpleValue{Keyword, tok}, nil
	case token.UIntLiteral:
		return SimpleValue{UInt, tok}, nil
	case token.IntLiteral:
		return SimpleValue{Int, tok}, nil
	case token.FloatLiteral:
		return SimpleValue{Float, tok}, nil
	case token.CharLiteral:
		return SimpleValue{Char, tok}, nil
	case token.StringLiteral:
		return SimpleValue{String, tok}, nil
	case token.ValueSymbol:
		return SimpleValue{ValueSymbol, tok}, nil
	case token.TypeSymbol:
		switch {
		case syntax.IsTypeKeyword(tok.Text):
			return SimpleValue{TypeKeyword, tok}, nil
		case syntax.IsQualified(tok.Text):
			return SimpleValue{TypePathSymbol, tok}, nil
		default:
			return SimpleValue{TypeSymbol, tok}, nil
		}
	case token.Comment, token.DocComment:
		return SimpleValue{}, source.NewSyntacticError(tok.Loc, "unexpected comment")
	}
	//
	return SimpleValue{}, source.NewSyntacticError(tok.Loc, "expected a simple value")
}

// Text returns the raw text of the underlying token.
func (v SimpleValue) Text() string {
	return v.Token.Text
}

// IsQualified checks whether this value is a qualified symbol.
func (v SimpleValue) IsQualified() bool {
	return syntax.IsQualified(v.Token.Text)
}

// IsSymbol checks whether this value is a symbol of either namespace.
func (v SimpleValue) IsSymbol() bool {
	switch v.Kind {
	case ValueSymbol, TypeSymbol, TypePathSymbol:
		return true
	}
	//
	return false
}

// IsLiteral checks whether this value is a primitive literal.
func (v SimpleValue) IsLiteral() bool {
	switch v.Kind {
	case UInt, Int, Float, Char, String:
		return true
	}
	//
	return false
}

// Loc returns the source location of this value.
func (v SimpleValue) Loc() source.Loc {
	return v.Token.Loc
}

// File returns the name of the file this value originates from, which is
// empty for raw string input.
func (v SimpleValue) File() string {
	return v.Token.Loc.File
}

// String returns the canonical text of this value, such that re-parsing it
// yields an identical value.
func (v SimpleValue) String() string {
	switch v.Kind {
	case Char:
		return "'" + v.Token.Text + "'"
	case String:
		return "\"" + v.Token.Text + "\""
	default:
		return v.Token.Text
	}
}
