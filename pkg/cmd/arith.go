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

	"github.com/consensys/go-mathex/pkg/word"
	"github.com/spf13/cobra"
)

var arithCmd = &cobra.Command{
	Use:   "arith [flags] x op y",
	Short: "evaluate fixed-width integer arithmetic.",
	Long: `Evaluate "x op y", where op is one of + - * / (or add, sub, mul, div)
	and each operand is written value:width (e.g. 255:8) or just value for a
	256-bit word.  The result has the width of the wider operand.  Checked
	arithmetic fails when the exact result does not fit, whilst unchecked
	arithmetic wraps.  With --assign, this is evaluated as "x op= y", which
	requires x to be at least as wide as y.`,
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 3)
		//
		op, err := word.ParseOp(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		x, y := parseWord(args[0]), parseWord(args[2])
		//
		r, err := evalArith(op, x, y, GetFlag(cmd, "unchecked"), GetFlag(cmd, "assign"))
		if err != nil {
			fail(err)
		}
		//
		fmt.Println(r)
	},
}

// Evaluate a binary operation, or a compound assignment.
func evalArith(op word.Op, x, y word.Word, unchecked bool, assign bool) (word.Word, error) {
	var err error
	//
	switch {
	case assign && unchecked:
		err = word.UncheckedAssign(op, &x, y)
	case assign:
		err = word.Assign(op, &x, y)
	case unchecked:
		x, err = word.Unchecked(op, x, y)
	default:
		x, err = word.Checked(op, x, y)
	}
	//
	return x, err
}

func init() {
	arithCmd.Flags().Bool("unchecked", false, "wrap on overflow rather than fail")
	arithCmd.Flags().Bool("assign", false, "evaluate as compound assignment")
	rootCmd.AddCommand(arithCmd)
}
