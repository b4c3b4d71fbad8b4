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

// Loc identifies a position within some source text.  Lines and columns both
// count from 1, and columns are measured in runes rather than bytes.  Input
// which did not originate from a file (e.g. a repl entry) has an empty
// filename.
type Loc struct {
	// Name of the originating file (empty for raw string input).
	File string
	// Line number, counting from 1.
	Line int
	// Column number within the line, counting from 1.
	Col int
	// Width (in runes) of the lexeme this location points at.
	Len int
}

// NewLoc constructs a location for a lexeme of a given width.
func NewLoc(file string, line, col, width int) Loc {
	return Loc{file, line, col, width}
}

// String returns this location in file:line:col form, omitting the filename
// when there is none.
func (p Loc) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	//
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}
