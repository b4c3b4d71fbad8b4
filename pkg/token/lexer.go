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
	"strings"

	"github.com/chritchens/sophia/pkg/syntax"
	"github.com/chritchens/sophia/pkg/util/source"
)

// Lex a given source file into a sequence of tokens, or produce an error
// describing the first lexical defect encountered.  Symbols are assigned to
// the value or the type namespace here, once, and qualification is likewise
// decided from the lexeme alone.
func Lex(srcfile *source.File) (Tokens, error) {
	p := &lexer{
		filename: srcfile.Filename(),
		text:     srcfile.Contents(),
		index:    0,
		line:     1,
		col:      1,
	}
	//
	return p.lex()
}

// FromString lexes a given raw string, whose tokens carry no filename.
func FromString(s string) (Tokens, error) {
	return Lex(source.NewSourceFile("", []byte(s)))
}

// FromFile reads and lexes a given source file.
func FromFile(path string) (Tokens, error) {
	srcfile, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	//
	return Lex(srcfile)
}

// lexer scans source text into tokens, tracking the line and column of the
// current position as it goes.
type lexer struct {
	// Name of the file being lexed (empty for raw strings).
	filename string
	// Text being lexed.
	text []rune
	// Current position within the text.
	index int
	// Line number of the current position, counting from 1.
	line int
	// Column number of the current position, counting from 1.
	col int
}

func (p *lexer) lex() (Tokens, error) {
	var tokens Tokens
	//
	for {
		p.skipWhitespace()
		// Check whether any text remains
		if p.index == len(p.text) {
			return tokens, nil
		}
		//
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		//
		tokens = append(tokens, tok)
	}
}

// Next extracts the next token, assuming at least one rune of non-whitespace
// text remains.
func (p *lexer) next() (Token, error) {
	var (
		line  = p.line
		col   = p.col
		start = p.index
	)
	//
	switch c := p.text[p.index]; c {
	case '#':
		return p.scanComment(line, col, start), nil
	case '(':
		p.advance()
		// An immediately adjacent close brace is the empty literal.
		if p.index < len(p.text) && p.text[p.index] == ')' {
			p.advance()
			return p.token(EmptyLiteral, "()", line, col, 2), nil
		}
		//
		return p.token(FormStart, "(", line, col, 1), nil
	case ')':
		p.advance()
		return p.token(FormEnd, ")", line, col, 1), nil
	case '\'':
		return p.scanChar(line, col, start)
	case '"':
		return p.scanString(line, col, start)
	default:
		return p.scanRun(line, col, start)
	}
}

// Skip any whitespace at the current position.
func (p *lexer) skipWhitespace() {
	for p.index < len(p.text) {
		switch p.text[p.index] {
		case ' ', '\t', '\r', '\n':
			p.advance()
		default:
			return
		}
	}
}

// Advance consumes a single rune, keeping the line and column in step.
func (p *lexer) advance() rune {
	c := p.text[p.index]
	p.index++
	//
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	//
	return c
}

// Scan a comment, which runs from "#" (or "#!" for a doc comment) to the end
// of the line.
func (p *lexer) scanComment(line, col, start int) Token {
	for p.index < len(p.text) && p.text[p.index] != '\n' {
		p.advance()
	}
	//
	text := string(p.text[start:p.index])
	//
	kind := Comment
	if strings.HasPrefix(text, "#!") {
		kind = DocComment
	}
	//
	return p.token(kind, text, line, col, p.index-start)
}

// Scan a char literal, which holds a single rune or a backslash escape pair
// between single quotes.  The quote itself may appear unescaped, as in "'''".
func (p *lexer) scanChar(line, col, start int) (Token, error) {
	// Consume opening quote
	p.advance()
	//
	if p.index == len(p.text) {
		return Token{}, p.parsingError(line, col, 1, "unterminated char literal")
	}
	//
	if p.text[p.index] == '\'' {
		// Either the quote character itself, or an empty literal.
		if p.index+1 >= len(p.text) || p.text[p.index+1] != '\'' {
			return Token{}, p.parsingError(line, col, 2, "empty char literal")
		}
	}
	//
	contentStart := p.index
	// A backslash escapes the following rune, which is kept raw.
	if p.text[p.index] == '\\' {
		p.advance()
		//
		if p.index == len(p.text) {
			return Token{}, p.parsingError(line, col, 1, "unterminated char literal")
		}
	}
	// Consume the character itself
	p.advance()
	// Expect closing quote
	if p.index == len(p.text) || p.text[p.index] != '\'' {
		return Token{}, p.parsingError(line, col, 1, "unterminated char literal")
	}
	//
	text := string(p.text[contentStart:p.index])
	p.advance()
	//
	return p.token(CharLiteral, text, line, col, p.index-start), nil
}

// Scan a string literal, which runs between double quotes.  A backslash
// escapes the following rune; escapes are kept raw in the token text.
func (p *lexer) scanString(line, col, start int) (Token, error) {
	// Consume opening quote
	p.advance()
	//
	contentStart := p.index
	//
	for p.index < len(p.text) {
		switch p.text[p.index] {
		case '\\':
			p.advance()
			// Consume the escaped rune (if any).
			if p.index < len(p.text) {
				p.advance()
			}
		case '"':
			text := string(p.text[contentStart:p.index])
			p.advance()
			//
			return p.token(StringLiteral, text, line, col, p.index-start), nil
		default:
			p.advance()
		}
	}
	//
	return Token{}, p.parsingError(line, col, 1, "unterminated string literal")
}

// Scan a run of non-delimiter runes and classify it as a number, a keyword
// or a symbol.
func (p *lexer) scanRun(line, col, start int) (Token, error) {
	for p.index < len(p.text) && !isDelimiter(p.text[p.index]) {
		p.advance()
	}
	//
	var (
		text  = string(p.text[start:p.index])
		width = p.index - start
	)
	//
	kind, ok := classify(text)
	if !ok {
		return Token{}, p.parsingError(line, col, width, "malformed number")
	}
	//
	return p.token(kind, text, line, col, width), nil
}

func (p *lexer) token(kind Kind, text string, line, col, width int) Token {
	return Token{kind, text, source.NewLoc(p.filename, line, col, width)}
}

func (p *lexer) parsingError(line, col, width int, msg string) error {
	return source.NewParsingError(source.NewLoc(p.filename, line, col, width), msg)
}

// A delimiter terminates a symbol or number run.  Single quotes do not, so
// primed symbols such as "x'" scan as one token.
func isDelimiter(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '#', '"':
		return true
	}
	//
	return false
}

// Classify a completed run.  Runs led by a digit, or by a sign followed by a
// digit, must scan as numbers; everything else is a keyword or a symbol.
func classify(text string) (Kind, bool) {
	runes := []rune(text)
	//
	switch {
	case isUIntLexeme(runes):
		return UIntLiteral, true
	case isIntLexeme(runes):
		return IntLiteral, true
	case isFloatLexeme(runes):
		return FloatLiteral, true
	case startsNumerically(runes):
		return 0, false
	case syntax.IsKeyword(text):
		return Keyword, true
	case syntax.IsTypeSymbol(text):
		return TypeSymbol, true
	default:
		return ValueSymbol, true
	}
}

func startsNumerically(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	//
	if isDigit(runes[0]) {
		return true
	}
	//
	return isSign(runes[0]) && len(runes) > 1 && (isDigit(runes[1]) || runes[1] == '.')
}

// An unsigned number is a decimal run, or a binary run led by 'b', or a
// hexadecimal run led by 'x'.
func isUIntLexeme(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	//
	switch runes[0] {
	case 'b':
		return len(runes) > 1 && allMatch(runes[1:], isBinDigit)
	case 'x':
		return len(runes) > 1 && allMatch(runes[1:], isHexDigit)
	default:
		return allMatch(runes, isDigit)
	}
}

// A signed integer is a decimal run led by an explicit sign.
func isIntLexeme(runes []rune) bool {
	return len(runes) > 1 && isSign(runes[0]) && allMatch(runes[1:], isDigit)
}

// A float is an optionally signed decimal-pointed run, with an optional
// exponent, as in "+0.432E-100".
func isFloatLexeme(runes []rune) bool {
	i := 0
	//
	if i < len(runes) && isSign(runes[i]) {
		i++
	}
	// Integer part
	j := i
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	//
	if i == j || i >= len(runes) || runes[i] != '.' {
		return false
	}
	// Fractional part
	i++
	j = i
	//
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	//
	if i == j {
		return false
	}
	//
	if i == len(runes) {
		return true
	}
	// Exponent
	if runes[i] != 'e' && runes[i] != 'E' {
		return false
	}
	//
	i++
	if i < len(runes) && isSign(runes[i]) {
		i++
	}
	//
	j = i
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	//
	return i > j && i == len(runes)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isBinDigit(c rune) bool {
	return c == '0' || c == '1'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSign(c rune) bool {
	return c == '+' || c == '-'
}

func allMatch(runes []rune, pred func(rune) bool) bool {
	for _, c := range runes {
		if !pred(c) {
			return false
		}
	}
	//
	return len(runes) > 0
}
