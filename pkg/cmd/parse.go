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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chritchens/sophia/pkg/form"
	"github.com/chritchens/sophia/pkg/util"
	"github.com/chritchens/sophia/pkg/value"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] source_file(s)",
	Short: "parse source files and print their top-level values.",
	Long: `Parse a given set of source file(s) into top-level values, checking
	 lexical and grammatical validity.  Each value prints in canonical form,
	 optionally together with its primitive typing and its form classification.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		showTypes := GetFlag(cmd, "types")
		showForms := GetFlag(cmd, "forms")
		//
		if len(args) == 0 {
			fmt.Println("expected one or more source files")
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		values := readValues(args...)
		stats.Log("parsing")
		//
		for _, v := range values {
			line := v.String()
			//
			if showTypes {
				line = fmt.Sprintf("%s : %s", line, v.Typing)
			}
			//
			if showForms {
				line = fmt.Sprintf("%s ; %s", line, classify(v))
			}
			//
			fmt.Println(line)
		}
	},
}

// classify names the most specific grammar a given top-level value validates
// under, trying definition forms before expression forms.
func classify(v value.Value) string {
	if !v.IsApp() {
		if v.Literal != nil {
			return "literal"
		}
		//
		return "symbol"
	}
	// Canonical text re-parses to an identical tree, so it is safe to
	// validate against the grammars from it.
	f, err := form.FromString(v.String())
	if err != nil {
		return "value"
	}
	//
	if _, err := form.NewTypeForm(f); err == nil {
		return "type form"
	}
	//
	if _, err := form.NewSigForm(f); err == nil {
		return "sig form"
	}
	//
	if _, err := form.NewAttrsForm(f); err == nil {
		return "attrs form"
	}
	//
	if _, err := form.NewFunForm(f); err == nil {
		return "fun form"
	}
	//
	if _, err := form.NewProdForm(f); err == nil {
		return "prod form"
	}
	//
	if _, err := form.NewSumForm(f); err == nil {
		return "sum form"
	}
	//
	if _, err := form.NewLetForm(f); err == nil {
		return "let form"
	}
	//
	if _, err := form.NewCaseForm(f); err == nil {
		return "case form"
	}
	//
	if _, err := form.NewAppForm(f); err == nil {
		return "app form"
	}
	//
	return "form"
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("types", "t", false, "print the primitive typing of each value")
	parseCmd.Flags().BoolP("forms", "f", false, "print the form classification of each value")
}
