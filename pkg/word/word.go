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
package word

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Op enumerates the arithmetic operators supported on fixed-width words.
type Op uint8

const (
	// Add is the "+" operator.
	Add Op = iota
	// Sub is the "-" operator.
	Sub
	// Mul is the "*" operator.
	Mul
	// Div is the "/" operator (rounding down).
	Div
)

var opNames = [...]string{"add", "sub", "mul", "div"}

var opSymbols = [...]string{"+", "-", "*", "/"}

// Ops lists every operator, in declaration order.
var Ops = []Op{Add, Sub, Mul, Div}

// ParseOp returns the operator with a given name (e.g. "add") or symbol (e.g.
// "+").
func ParseOp(name string) (Op, error) {
	for i := range opNames {
		if name == opNames[i] || name == opSymbols[i] {
			return Op(i), nil
		}
	}
	//
	return 0, fmt.Errorf("unknown operator \"%s\"", name)
}

// Name returns the textual name of this operator (e.g. "add").
func (op Op) Name() string {
	return opNames[op]
}

func (op Op) String() string {
	return opSymbols[op]
}

// Word is an unsigned integer tagged with its bitwidth.  The value of a word
// always fits within its width.
type Word struct {
	width Width
	value uint256.Int
}

// New constructs a word of a given width, failing with ErrOverflow when the
// value does not fit.  This is a checked down-cast.
func New(w Width, x *uint256.Int) (Word, error) {
	if !w.Fits(x) {
		return Word{}, fmt.Errorf("%s does not fit in %s: %w", x.Dec(), w, ErrOverflow)
	}
	//
	return Word{w, *x}, nil
}

// Wrap constructs a word of a given width from the low-order bits of a value.
// This is a truncating cast.
func Wrap(w Width, x *uint256.Int) Word {
	v := *x
	w.wrap(&v)
	//
	return Word{w, v}
}

// FromUint64 constructs a word of a given width, failing with ErrOverflow when
// the value does not fit.
func FromUint64(w Width, x uint64) (Word, error) {
	return New(w, uint256.NewInt(x))
}

// Width returns the bitwidth of this word.
func (x Word) Width() Width {
	return x.width
}

// Int returns (a copy of) the value of this word.
func (x Word) Int() *uint256.Int {
	return new(uint256.Int).Set(&x.value)
}

// Cmp compares the values of two words, ignoring their widths.
func (x Word) Cmp(y Word) int {
	return x.value.Cmp(&y.value)
}

func (x Word) String() string {
	return fmt.Sprintf("%s(%s)", x.width, x.value.Dec())
}

// Checked applies a given operator to two words.  The result has the width of
// the wider operand, and the operation fails if the exact result is not
// representable in that width.
func Checked(op Op, x, y Word) (Word, error) {
	w := max(x.width, y.width)
	//
	z, err := eval(op, true, w, &x.value, &y.value)
	if err != nil {
		return Word{}, fmt.Errorf("%s %s %s: %w", x, op, y, err)
	}
	//
	return Word{w, z}, nil
}

// Unchecked applies a given operator to two words, wrapping the exact result
// modulo 2^w where w is the width of the wider operand.  The only failure is
// division by zero.
func Unchecked(op Op, x, y Word) (Word, error) {
	w := max(x.width, y.width)
	//
	z, err := eval(op, false, w, &x.value, &y.value)
	if err != nil {
		return Word{}, fmt.Errorf("%s %s %s: %w", x, op, y, err)
	}
	//
	return Word{w, z}, nil
}

// Assign performs the checked compound assignment "x op= y".  This is only
// defined when x is at least as wide as y.  On failure, x is left unchanged.
func Assign(op Op, x *Word, y Word) error {
	return assign(op, true, x, y)
}

// UncheckedAssign performs the wrapping compound assignment "x op= y".  This
// is only defined when x is at least as wide as y.  On failure, x is left
// unchanged.
func UncheckedAssign(op Op, x *Word, y Word) error {
	return assign(op, false, x, y)
}

func assign(op Op, checked bool, x *Word, y Word) error {
	if x.width < y.width {
		return fmt.Errorf("%s %s= %s: %w", x.width, op, y.width, ErrWidthMismatch)
	}
	//
	z, err := eval(op, checked, x.width, &x.value, &y.value)
	if err != nil {
		return fmt.Errorf("%s %s= %s: %w", x, op, y, err)
	}
	//
	x.value = z
	//
	return nil
}

// Evaluate "x op y" in a given width.  Both operands are assumed to fit within
// the width already.
func eval(op Op, checked bool, w Width, x, y *uint256.Int) (uint256.Int, error) {
	var (
		z        uint256.Int
		overflow bool
	)
	//
	switch op {
	case Add:
		_, overflow = z.AddOverflow(x, y)
	case Sub:
		if checked && x.Lt(y) {
			return z, ErrUnderflow
		}
		//
		z.Sub(x, y)
	case Mul:
		_, overflow = z.MulOverflow(x, y)
	case Div:
		if y.IsZero() {
			return z, ErrDivisionByZero
		}
		//
		z.Div(x, y)
	default:
		panic(fmt.Sprintf("unknown operator %d", op))
	}
	// Check the exact result fits
	if checked && (overflow || !w.Fits(&z)) {
		return uint256.Int{}, ErrOverflow
	}
	// Reduce modulo 2^w.  Since 2^w divides 2^256, this agrees with reducing the
	// exact result.
	w.wrap(&z)
	//
	return z, nil
}
