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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readValues parses the given source files into one sequence of top-level
// values, reporting any error and exiting on failure.
func readValues(paths ...string) value.Values {
	values, err := value.ParseFiles(paths...)
	if err != nil {
		reportError(err)
		os.Exit(4)
	}
	//
	return values
}

// reportError prints an error on stderr, underlining the offending lexeme
// when the error locates into a readable source file.
func reportError(err error) {
	loc := source.Location(err)
	if loc == nil || loc.File == "" {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	//
	srcfile, rerr := source.ReadFile(loc.File)
	if rerr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	//
	reportLineError(srcfile.Line(loc.Line), loc, err)
}

// reportLineError prints an error on stderr together with the line it arose
// on and a caret underlining the offending lexeme.
func reportLineError(line string, loc *source.Loc, err error) {
	fmt.Fprintln(os.Stderr, err)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, line)
	fmt.Fprintln(os.Stderr, underline(line, loc, terminalWidth()))
}

// underline renders a caret line pointing at the lexeme a given location
// identifies within its line.  The caret never overflows the line or the
// terminal.
func underline(line string, loc *source.Loc, width int) string {
	runes := len([]rune(line))
	// Calculate indent and caret length (ensures don't overflow line)
	indent := min(loc.Col-1, runes)
	carets := min(max(loc.Len, 1), runes-indent+1)
	carets = max(min(carets, width-indent), 1)
	//
	return strings.Repeat(" ", indent) + strings.Repeat("^", carets)
}

// terminalWidth determines the width of the controlling terminal, falling
// back to a conventional width when there is none.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	//
	return 80
}
