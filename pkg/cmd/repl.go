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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chritchens/sophia/pkg/symbols"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

const (
	// Name of the history file, kept in the user's home directory.
	historyFile = ".sophia_history"
	// Prompt shown at the start of an entry.
	promptMain = "sp> "
	// Prompt shown on continuation lines of an unfinished form.
	promptCont = "... "
)

const replHelp = `:help     show this message
:symbols  print the symbol table built so far
:quit     leave the repl (Ctrl+D also works)
`

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "read, parse and echo values interactively.",
	Long: `Start an interactive session which parses each entry, echoes the
	 values read along with their typings, and accumulates their symbols
	 into a session-wide symbol table.  Entries may span several lines;
	 an unclosed form switches to a continuation prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		histPath := GetString(cmd, "history")
		if histPath == "" {
			histPath = historyPath()
		}
		//
		runRepl(histPath)
	},
}

func runRepl(histPath string) {
	fmt.Println("sophia repl. Ctrl+D exits, :help lists commands.")
	//
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	// Load history (best effort).
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	// Persist history on the way out (best effort).
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()
	// Symbols accumulate across the whole session.
	st := symbols.NewSymbolTable()
	//
	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Println()
			return
		}
		//
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		//
		if strings.HasPrefix(trimmed, ":") {
			if quit := runReplCommand(trimmed, st); quit {
				return
			}
			//
			continue
		}
		//
		values, err := value.ParseString(entry)
		if err != nil {
			reportEntryError(entry, err)
			continue
		}
		//
		for _, v := range values {
			fmt.Printf("%s : %s\n", v.String(), v.Typing.String())
		}
		//
		if err := st.Aggregate(values); err != nil {
			reportEntryError(entry, err)
			continue
		}
		//
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
	}
}

// Read one entry, prompting for further lines while the text so far ends
// inside an unclosed form.  The flag is false exactly when the session is
// over (Ctrl+D on an empty line).
func readEntry(ln *liner.State) (string, bool) {
	var builder strings.Builder
	//
	for {
		var (
			line string
			err  error
		)
		//
		if builder.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		//
		if errors.Is(err, io.EOF) {
			return "", false
		} else if err != nil {
			// Ctrl+C drops the partial entry.
			return "", true
		}
		//
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		//
		builder.WriteString(line)
		//
		entry := builder.String()
		// Probe the parser.  Any outcome other than an unclosed form ends
		// the entry, leaving real errors for the caller to report.
		if _, err := value.ParseString(entry); !incomplete(err) {
			return entry, true
		}
	}
}

// Check whether a parse error indicates the text merely stopped short,
// rather than being malformed.
func incomplete(err error) bool {
	e, ok := err.(*source.SyntacticError)
	//
	return ok && e.Desc == "unclosed form"
}

// Handle a colon-prefixed repl command, returning true to end the session.
func runReplCommand(entry string, st *symbols.SymbolTable) bool {
	switch entry {
	case ":quit":
		return true
	case ":symbols":
		fmt.Print(st.Summary())
	case ":help":
		fmt.Print(replHelp)
	default:
		fmt.Printf("unknown command %s. Type :help for help.\n", entry)
	}
	//
	return false
}

// Report an error arising from a repl entry, underlining the offending
// text when its location points back into the entry itself.
func reportEntryError(entry string, err error) {
	loc := source.Location(err)
	// Locations with a filename refer to imported files, not the entry.
	if loc == nil || loc.File != "" {
		reportError(err)
		return
	}
	//
	lines := strings.Split(entry, "\n")
	if loc.Line < 1 || loc.Line > len(lines) {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	//
	reportLineError(lines[loc.Line-1], loc, err)
}

// Determine where session history lives, falling back to the working
// directory when the home directory cannot be determined.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	//
	return filepath.Join(home, historyFile)
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("history", "", "file used to persist entry history")
}
