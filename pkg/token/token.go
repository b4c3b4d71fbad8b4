// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"

	"github.com/chritchens/sophia/pkg/util/source"
)

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Comment signals "# ... \n"
	Comment Kind = iota
	// DocComment signals "#! ... \n"
	DocComment
	// EmptyLiteral signals "()"
	EmptyLiteral
	// Keyword signals a reserved definition keyword (e.g. "defun", "import").
	Keyword
	// UIntLiteral signals an unsigned number (e.g. "10", "b101", "xFF").
	UIntLiteral
	// IntLiteral signals a sign-led integer (e.g. "-3290", "+5").
	IntLiteral
	// FloatLiteral signals a decimal-pointed number (e.g. "+0.432E-100").
	FloatLiteral
	// CharLiteral signals a quoted character (e.g. "'c'").
	CharLiteral
	// StringLiteral signals a quoted string (e.g. "\"hello\"").
	StringLiteral
	// ValueSymbol signals a symbol in the value namespace (e.g. "io", "+").
	ValueSymbol
	// TypeSymbol signals a symbol in the type namespace (e.g. "Square").
	TypeSymbol
	// FormStart signals "("
	FormStart
	// FormEnd signals ")"
	FormEnd
)

// String returns a human readable name for a given token kind.
func (k Kind) String() string {
	switch k {
	case Comment:
		return "comment"
	case DocComment:
		return "doc comment"
	case EmptyLiteral:
		return "empty literal"
	case Keyword:
		return "keyword"
	case UIntLiteral:
		return "uint literal"
	case IntLiteral:
		return "int literal"
	case FloatLiteral:
		return "float literal"
	case CharLiteral:
		return "char literal"
	case StringLiteral:
		return "string literal"
	case ValueSymbol:
		return "value symbol"
	case TypeSymbol:
		return "type symbol"
	case FormStart:
		return "form start"
	case FormEnd:
		return "form end"
	}
	//
	return "unknown"
}

// Token is a single lexeme of source text, along with its lexical class and
// the location it was scanned at.  For char and string literals, Text holds
// the content between the quotes with escapes kept raw; for every other kind
// it holds the lexeme itself.
type Token struct {
	// Lexical class of this token.
	Kind Kind
	// Text of this token.
	Text string
	// Location this token was scanned at.
	Loc source.Loc
}

// IsComment checks whether this token is a comment or a doc comment.
func (t Token) IsComment() bool {
	return t.Kind == Comment || t.Kind == DocComment
}

// String returns a human readable summary of this token, for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Tokens is a sequence of tokens, in source order.
type Tokens []Token

// Filter returns those tokens matching a given predicate, preserving order.
func (ts Tokens) Filter(pred func(Token) bool) Tokens {
	var filtered Tokens
	//
	for _, t := range ts {
		if pred(t) {
			filtered = append(filtered, t)
		}
	}
	//
	return filtered
}

// WithoutComments returns this token sequence with every comment and doc
// comment removed.
func (ts Tokens) WithoutComments() Tokens {
	return ts.Filter(func(t Token) bool { return !t.IsComment() })
}
