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

import (
	"os"

	"github.com/pkg/errors"
)

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	contents := []rune(string(bytes))
	return &File{filename, contents}
}

// ReadFile reads a given source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		file, err := ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *file
	}
	//
	return files, nil
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the contents of this source file as a string.
func (s *File) Text() string {
	return string(s.contents)
}

// Line returns the text of a given line within this source file, where the
// first line has number 1.  Observe that, if the number is beyond the bounds
// of the source file, an empty string is returned.
func (s *File) Line(number int) string {
	num := 1
	start := 0
	// Find the line.
	for i := 0; i < len(s.contents); i++ {
		if s.contents[i] == '\n' {
			if num == number {
				return string(s.contents[start:i])
			}
			//
			num++
			start = i + 1
		}
	}
	// Final line has no trailing newline.
	if num == number {
		return string(s.contents[start:])
	}
	//
	return ""
}
