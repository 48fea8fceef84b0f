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

	"github.com/consensys/go-mathex/pkg/mathex"
	"github.com/spf13/cobra"
)

var exp2Cmd = &cobra.Command{
	Use:   "exp2 [flags] n/d",
	Short: "compute 2 raised to a fractional power.",
	Long: `Compute 2^(n/d) as a fraction whose denominator is 2^127.  This fails
	when n/d is 16/ln(2) (roughly 23.08) or more.`,
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 1)
		//
		cfg := getConfig(cmd)
		//
		r, err := mathex.Exp2(parseFraction(args[0]))
		if err != nil {
			fail(err)
		}
		//
		fmt.Println(formatFraction(r, cfg.Precision))
	},
}

var truncateCmd = &cobra.Command{
	Use:   "truncate [flags] n/d max",
	Short: "scale a fraction down so that both components are at most max.",
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 2)
		//
		cfg := getConfig(cmd)
		//
		r, err := mathex.TruncatedFraction(parseFraction(args[0]), parseUint256(args[1]))
		if err != nil {
			fail(err)
		}
		//
		fmt.Println(formatFraction(r, cfg.Precision))
	},
}

var averageCmd = &cobra.Command{
	Use:   "average [flags] n1/d1 n2/d2 w1 w2",
	Short: "compute the weighted average of two fractions.",
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 4)
		//
		cfg := getConfig(cmd)
		f1, f2 := parseFraction(args[0]), parseFraction(args[1])
		//
		r, err := mathex.WeightedAverage(f1, f2, parseUint256(args[2]), parseUint256(args[3]))
		if err != nil {
			fail(err)
		}
		//
		fmt.Println(formatFraction(r, cfg.Precision))
	},
}

var inRangeCmd = &cobra.Command{
	Use:   "in-range [flags] base offset",
	Short: "check whether an offset sample is within a permitted deviation of a base sample.",
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 2)
		//
		deviation := GetUint(cmd, "deviation")
		if deviation > 1<<32-1 {
			fmt.Printf("deviation %d out of range\n", deviation)
			os.Exit(2)
		}
		//
		base, offset := parseFraction(args[0]), parseFraction(args[1])
		//
		fmt.Println(mathex.IsInRange(base, offset, uint32(deviation)))
	},
}

// Format a fraction along with its decimal value.
func formatFraction(f mathex.Fraction, precision int32) string {
	return fmt.Sprintf("%s (%s)", f, f.Decimal(precision).String())
}

func init() {
	for _, cmd := range []*cobra.Command{exp2Cmd, truncateCmd, averageCmd} {
		cmd.Flags().Uint("precision", 18, "number of decimal places to display")
		rootCmd.AddCommand(cmd)
	}
	//
	inRangeCmd.Flags().Uint("deviation", 10000, "maximum permitted deviation (in PPM, where 1% is 10000)")
	rootCmd.AddCommand(inRangeCmd)
}
