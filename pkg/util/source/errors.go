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
package source

import "fmt"

// ParsingError reports a lexical defect in the source text, such as an
// unterminated literal, or a token which an earlier stage should have
// filtered out before it reached the reporting stage.
type ParsingError struct {
	// Location at which the error arose (nil when unknown).
	Loc *Loc
	// Description of the error.
	Desc string
}

// SyntacticError reports a grammatical defect, such as a form with the wrong
// head keyword or arity, a qualified symbol in a binding position, or
// unbalanced parentheses.
type SyntacticError struct {
	// Location at which the error arose (nil when unknown).
	Loc *Loc
	// Description of the error.
	Desc string
}

// SemanticError reports a defect visible only once definitions are
// considered together, such as a duplicated entry point or a malformed
// definition body.
type SemanticError struct {
	// Location at which the error arose (nil when unknown).
	Loc *Loc
	// Description of the error.
	Desc string
}

// NewParsingError constructs a parsing error at a given location.
func NewParsingError(loc Loc, desc string) *ParsingError {
	return &ParsingError{&loc, desc}
}

// NewSyntacticError constructs a syntactic error at a given location.
func NewSyntacticError(loc Loc, desc string) *SyntacticError {
	return &SyntacticError{&loc, desc}
}

// NewSemanticError constructs a semantic error at a given location.
func NewSemanticError(loc Loc, desc string) *SemanticError {
	return &SemanticError{&loc, desc}
}

// Error implements the error interface.
func (p *ParsingError) Error() string {
	return describe(p.Loc, p.Desc)
}

// Error implements the error interface.
func (p *SyntacticError) Error() string {
	return describe(p.Loc, p.Desc)
}

// Error implements the error interface.
func (p *SemanticError) Error() string {
	return describe(p.Loc, p.Desc)
}

// Location returns the (optional) location a given error is associated with,
// for any of the three error kinds above.
func Location(err error) *Loc {
	switch e := err.(type) {
	case *ParsingError:
		return e.Loc
	case *SyntacticError:
		return e.Loc
	case *SemanticError:
		return e.Loc
	}
	//
	return nil
}

func describe(loc *Loc, desc string) string {
	if loc == nil {
		return desc
	}
	//
	return fmt.Sprintf("%s: %s", loc, desc)
}
