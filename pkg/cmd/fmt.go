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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chritchens/sophia/pkg/token"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] source_file(s)",
	Short: "reprint source files in canonical form.",
	Long: `Reformat a given set of source file(s) into canonical form: one
	 top-level value per entry, one blank line between entries, top-level
	 comments kept in place.  Comments inside forms are dropped.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		write := GetFlag(cmd, "write")
		check := GetFlag(cmd, "check")
		//
		if len(args) == 0 {
			fmt.Println("expected one or more source files")
			os.Exit(1)
		}
		//
		dirty := false
		//
		for _, path := range args {
			srcfile, err := source.ReadFile(path)
			if err != nil {
				reportError(err)
				os.Exit(4)
			}
			//
			formatted, err := formatSource(srcfile)
			if err != nil {
				reportError(err)
				os.Exit(4)
			}
			//
			switch {
			case check:
				if formatted != srcfile.Text() {
					fmt.Println(path)
					//
					dirty = true
				}
			case write:
				if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
			default:
				fmt.Print(formatted)
			}
		}
		// In check mode, any file needing a rewrite fails the run.
		if dirty {
			os.Exit(1)
		}
	},
}

// formatSource renders the canonical form of a given source file.  Entries
// are the top-level values, printed canonically, interleaved with the
// comments sitting between them.
func formatSource(srcfile *source.File) (string, error) {
	tokens, err := token.Lex(srcfile)
	if err != nil {
		return "", err
	}
	//
	values, err := value.FromTokens(tokens.WithoutComments())
	if err != nil {
		return "", err
	}
	//
	var entries []string
	//
	i := 0
	k := 0
	//
	for i < len(tokens) {
		if tokens[i].IsComment() {
			block := tokens[i].Text
			// Comments on consecutive lines stay together as one block.
			for i+1 < len(tokens) && tokens[i+1].IsComment() && tokens[i+1].Loc.Line == tokens[i].Loc.Line+1 {
				i++
				block += "\n" + tokens[i].Text
			}
			//
			entries = append(entries, block)
			i++
			//
			continue
		}
		// A non-comment token at the top level begins the run of the next
		// value.
		entries = append(entries, values[k].String())
		k++
		//
		i = skipRun(tokens, i)
	}
	//
	if len(entries) == 0 {
		return "", nil
	}
	//
	return strings.Join(entries, "\n\n") + "\n", nil
}

// Find the index just past the token run beginning at a given index, which
// is a single token for an atom and a balanced run for a form.
func skipRun(tokens token.Tokens, start int) int {
	if tokens[start].Kind != token.FormStart {
		return start + 1
	}
	//
	depth := 0
	//
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case token.FormStart:
			depth++
		case token.FormEnd:
			depth--
		}
		//
		if depth == 0 {
			return i + 1
		}
	}
	//
	return len(tokens)
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite each file in place instead of printing")
	fmtCmd.Flags().Bool("check", false, "list files whose canonical form differs and fail if any")
}
