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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chritchens/sophia/pkg/symbols"
	"github.com/chritchens/sophia/pkg/value"
)

func TestIncomplete_00(t *testing.T) {
	// Entries ending inside an open form merely stopped short.
	checkIncomplete(t, "(defun main io", true)
	checkIncomplete(t, "(f (g 1)", true)
	checkIncomplete(t, "(let (sig x Int)", true)
}

func TestIncomplete_01(t *testing.T) {
	// Complete or malformed entries end the read either way.
	checkIncomplete(t, "(f 1)", false)
	checkIncomplete(t, "10", false)
	checkIncomplete(t, ")", false)
	checkIncomplete(t, "(f ))", false)
}

func TestReplCommand_00(t *testing.T) {
	st := symbols.NewSymbolTable()
	//
	assert.True(t, runReplCommand(":quit", st))
	assert.False(t, runReplCommand(":symbols", st))
}

// ==================================================================
// Framework
// ==================================================================

func checkIncomplete(t *testing.T, input string, expected bool) {
	_, err := value.ParseString(input)
	//
	assert.Equal(t, expected, incomplete(err), input)
}
