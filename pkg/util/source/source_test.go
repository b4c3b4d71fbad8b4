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

import "testing"

func TestSource_00(t *testing.T) {
	loc := NewLoc("main.sp", 3, 7, 4)
	checkString(t, "main.sp:3:7", loc.String())
}

func TestSource_01(t *testing.T) {
	loc := NewLoc("", 1, 1, 1)
	checkString(t, "1:1", loc.String())
}

func TestSource_02(t *testing.T) {
	err := NewSyntacticError(NewLoc("lib.sp", 2, 5, 3), "expected a fun keyword")
	checkString(t, "lib.sp:2:5: expected a fun keyword", err.Error())
}

func TestSource_03(t *testing.T) {
	err := &SemanticError{Desc: "duplicate main function"}
	checkString(t, "duplicate main function", err.Error())

	if Location(err) != nil {
		t.Errorf("expected no location, got %v", Location(err))
	}
}

func TestSource_04(t *testing.T) {
	err := NewParsingError(NewLoc("", 9, 2, 1), "unterminated string literal")
	//
	if loc := Location(err); loc == nil || loc.Line != 9 || loc.Col != 2 {
		t.Errorf("unexpected location: %v", loc)
	}
}

func TestSource_05(t *testing.T) {
	file := NewSourceFile("test.sp", []byte("(import std.io)\n(defun main () ())\n"))
	checkString(t, "(import std.io)", file.Line(1))
	checkString(t, "(defun main () ())", file.Line(2))
	checkString(t, "", file.Line(3))
}

func TestSource_06(t *testing.T) {
	file := NewSourceFile("test.sp", []byte("(def x 10)"))
	// Final line carries no newline.
	checkString(t, "(def x 10)", file.Line(1))
	checkString(t, "test.sp", file.Filename())
}

// ==================================================================
// Framework
// ==================================================================

func checkString(t *testing.T, expected string, actual string) {
	t.Helper()
	//
	if expected != actual {
		t.Errorf("got %q, expected %q", actual, expected)
	}
}
