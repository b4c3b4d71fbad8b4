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

	"github.com/chritchens/sophia/pkg/symbols"
	"github.com/chritchens/sophia/pkg/util"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] source_file(s)",
	Short: "check source files and summarise their symbol table.",
	Long: `Check a given set of source file(s) by aggregating every top-level
	 definition into one symbol table, enforcing entry point uniqueness along
	 the way, and printing a summary of the table.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) == 0 {
			fmt.Println("expected one or more source files")
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		//
		st, err := symbols.FromFiles(args...)
		if err != nil {
			reportError(err)
			os.Exit(4)
		}
		//
		stats.Log("symbol aggregation")
		//
		fmt.Print(st.Summary())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
