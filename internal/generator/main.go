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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Widths for which a statically typed word is generated.
var widths = []uint{32, 112, 128, 256}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-mathex")
	//
	assertNoError(bgen.Generate(newUintSpecs(widths), "word", "templates",
		bavard.Entry{
			File:      "../../pkg/word/uints.go",
			Templates: []string{"uints.go.tmpl"},
		},
	), "for package \"word\"")
	// run gofmt on the generated package
	runCmd("gofmt", "-w", "../../pkg/word")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// uintSpecs is the data given to the templates.
type uintSpecs struct {
	Widths []widthSpec
	Ops    []opSpec
}

// widthSpec describes one statically typed word, along with every binary
// operation for which it is the left-hand operand.
type widthSpec struct {
	Name  string
	Bits  uint
	Const string
	// Binary operations, one per right-hand width.
	Pairs []pairSpec
	// Right-hand widths for which compound assignment is defined, namely those
	// which are no wider than this one.
	Assignable []string
}

// pairSpec describes a binary operation between two typed words.
type pairSpec struct {
	Right       string
	Result      string
	ResultConst string
	ResultBits  uint
}

// opSpec describes an arithmetic operator.
type opSpec struct {
	Name    string
	Symbol  string
	Failure string
	// Whether the unchecked form can still fail (i.e. division by zero).
	Fallible bool
}

var ops = []opSpec{
	{"Add", "+", "ErrOverflow if the sum does not fit", false},
	{"Sub", "-", "ErrUnderflow if y is greater than x", false},
	{"Mul", "*", "ErrOverflow if the product does not fit", false},
	{"Div", "/", "ErrDivisionByZero if y is zero", true},
}

func newUintSpecs(bits []uint) uintSpecs {
	var specs uintSpecs
	//
	for _, l := range bits {
		spec := widthSpec{Name: uintName(l), Bits: l, Const: widthConst(l)}
		//
		for _, r := range bits {
			res := max(l, r)
			spec.Pairs = append(spec.Pairs, pairSpec{uintName(r), uintName(res), widthConst(res), res})
			//
			if r <= l {
				spec.Assignable = append(spec.Assignable, uintName(r))
			}
		}
		//
		specs.Widths = append(specs.Widths, spec)
	}
	//
	specs.Ops = slices.Clone(ops)
	//
	return specs
}

func uintName(bits uint) string {
	return fmt.Sprintf("Uint%d", bits)
}

func widthConst(bits uint) string {
	return fmt.Sprintf("W%d", bits)
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
