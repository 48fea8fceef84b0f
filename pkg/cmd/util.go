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
	"os"
	"strings"

	"github.com/consensys/go-mathex/pkg/config"
	"github.com/consensys/go-mathex/pkg/mathex"
	"github.com/consensys/go-mathex/pkg/util/termio"
	"github.com/consensys/go-mathex/pkg/vector"
	"github.com/consensys/go-mathex/pkg/word"
	"github.com/holiman/uint256"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
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

// Read the configuration file (if given) and apply any flags which override
// it.
func getConfig(cmd *cobra.Command) config.Config {
	var (
		cfg      = config.Default()
		filename = GetString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		if cfg, err = config.Load(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("loaded configuration from %s", filename)
	}
	//
	if flags := cmd.Flags(); flags.Lookup("precision") != nil && flags.Changed("precision") {
		cfg.Precision = int32(GetUint(cmd, "precision"))
	}
	//
	return cfg
}

// Parse an unsigned 256-bit integer given in decimal or (with a "0x" prefix)
// hexadecimal, or exit.
func parseUint256(arg string) *uint256.Int {
	var (
		x   uint256.Int
		err error
	)
	//
	if strings.HasPrefix(arg, "0x") {
		err = x.SetFromHex(arg)
	} else {
		err = x.SetFromDecimal(arg)
	}
	//
	if err != nil {
		fmt.Printf("invalid integer \"%s\" (%s)\n", arg, err)
		os.Exit(2)
	}
	//
	return &x
}

// Parse a fraction written "n/d", or simply "n" (meaning n/1), or exit.
func parseFraction(arg string) mathex.Fraction {
	var f mathex.Fraction
	//
	if n, d, ok := strings.Cut(arg, "/"); ok {
		f.N, f.D = *parseUint256(n), *parseUint256(d)
	} else {
		f.N, f.D = *parseUint256(arg), *uint256.NewInt(1)
	}
	//
	return f
}

// Parse a fixed-width word written "value:width" (e.g. "255:8"), or simply
// "value" (meaning a 256-bit word), or exit.
func parseWord(arg string) word.Word {
	var (
		value = arg
		bits  = uint(256)
	)
	//
	if v, w, ok := strings.Cut(arg, ":"); ok {
		value = v
		//
		if _, err := fmt.Sscanf(strings.TrimPrefix(w, "uint"), "%d", &bits); err != nil {
			fmt.Printf("invalid width \"%s\"\n", w)
			os.Exit(2)
		}
	}
	//
	width, err := word.NewWidth(bits)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	x, err := word.New(width, parseUint256(value))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return x
}

// Check the number of arguments matches that expected, otherwise print usage
// and exit.
func expectArgs(cmd *cobra.Command, args []string, n int) {
	if len(args) != n {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}

// Report a failed operation and exit.
func fail(err error) {
	log.Debug(err)
	fmt.Println(highlight(fmt.Sprintf("error: %s", err), termio.TERM_RED))
	os.Exit(1)
}

// Highlight some text in a given colour, provided stdout is a terminal.
func highlight(text string, colour uint) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	//
	escape := termio.NewAnsiEscape().FgColour(colour).Build()
	reset := termio.ResetAnsiEscape().Build()
	//
	return fmt.Sprintf("%s%s%s", escape, text, reset)
}

// Report an error arising from a vector file.  Parse errors are shown in the
// context of the line on which they occurred.
func printVectorError(filename string, text []byte, err error) {
	var perr *vector.ParseError
	//
	if errors.As(err, &perr) && perr.Index < len(text) {
		printSyntaxError(filename, perr.Message, perr.Index, perr.Index+1, string(text))
	} else {
		fmt.Printf("%s: %s\n", filename, err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(filename string, msg string, start int, end int, text string) {
	line, offset, num := findEnclosingLine(start, text)
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", filename, num, msg)
	// Print line
	fmt.Println(line)
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", start-offset))
	// Print highlight
	fmt.Println(highlight(strings.Repeat("^", end-start), termio.TERM_RED))
}

// Determine the enclosing line for the given index in a string.
func findEnclosingLine(index int, text string) (string, int, int) {
	num := 1
	start := 0
	// Handle case where we've reached the end-of-file unexpectedly.  This
	// essentially means the error is reported at the end of the last physical
	// line.
	if index >= len(text) {
		index = len(text) - 1
	}
	// Find the line.
	for i := 0; i < len(text); i++ {
		if i == index {
			end := findEndOfLine(index, text)
			return text[start:end], start, num
		} else if text[i] == '\n' {
			num++
			start = i + 1
		}
	}
	// Empty text
	return "", 0, num
}

// Find the end of the enclosing line
func findEndOfLine(index int, text string) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
