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
	"math/big"
	"os"

	"github.com/consensys/go-mathex/pkg/mathex"
	"github.com/spf13/cobra"
)

var mulDivCmd = &cobra.Command{
	Use:   "muldiv [flags] x y z",
	Short: "compute x*y/z without intermediate overflow.",
	Long: `Compute x*y/z, rounding down by default, where the product x*y is
	evaluated in 512 bits.  This fails if the result does not fit in 256 bits.`,
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 3)
		//
		x, y, z := parseUint256(args[0]), parseUint256(args[1]), parseUint256(args[2])
		mulDiv := mathex.MulDivF
		//
		if GetFlag(cmd, "mod") {
			mulDiv = mathex.MulMod
		} else if GetFlag(cmd, "ceil") {
			mulDiv = mathex.MulDivC
		}
		//
		r, err := mulDiv(x, y, z)
		if err != nil {
			fail(err)
		}
		//
		fmt.Println(r.Dec())
	},
}

var mul512Cmd = &cobra.Command{
	Use:   "mul512 [flags] x y",
	Short: "compute the full 512-bit product of two 256-bit integers.",
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 2)
		//
		r := mathex.Mul512(parseUint256(args[0]), parseUint256(args[1]))
		//
		fmt.Printf("%s,%s\n", r.Hi.Dec(), r.Lo.Dec())
	},
}

var cmp512Cmd = &cobra.Command{
	Use:   "cmp512 [flags] x y",
	Short: "compare two 512-bit integers.",
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 2)
		//
		x, y := parseUint512(args[0]), parseUint512(args[1])
		//
		fmt.Printf("gt512: %t\n", mathex.Gt512(x, y))
		fmt.Printf("lt512: %t\n", mathex.Lt512(x, y))
		fmt.Printf("gte512: %t\n", mathex.Gte512(x, y))
		fmt.Printf("lte512: %t\n", mathex.Lte512(x, y))
	},
}

var subMax0Cmd = &cobra.Command{
	Use:   "submax0 [flags] x y",
	Short: "compute the maximum of x-y and 0.",
	Run: func(cmd *cobra.Command, args []string) {
		expectArgs(cmd, args, 2)
		//
		fmt.Println(mathex.SubMax0(parseUint256(args[0]), parseUint256(args[1])).Dec())
	},
}

// Parse an unsigned 512-bit integer given in decimal, or exit.
func parseUint512(arg string) mathex.Uint512 {
	var r mathex.Uint512
	//
	x, ok := new(big.Int).SetString(arg, 10)
	if !ok || x.Sign() < 0 || x.BitLen() > 512 {
		fmt.Printf("invalid 512-bit integer \"%s\"\n", arg)
		os.Exit(2)
	}
	//
	r.Hi.SetFromBig(new(big.Int).Rsh(x, 256))
	r.Lo.SetFromBig(x)
	//
	return r
}

func init() {
	mulDivCmd.Flags().Bool("ceil", false, "round up rather than down")
	mulDivCmd.Flags().Bool("mod", false, "compute x*y mod z instead")
	rootCmd.AddCommand(mulDivCmd)
	rootCmd.AddCommand(mul512Cmd)
	rootCmd.AddCommand(cmp512Cmd)
	rootCmd.AddCommand(subMax0Cmd)
}
