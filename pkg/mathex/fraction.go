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
package mathex

import (
	"fmt"

	"github.com/consensys/go-mathex/pkg/word"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Fraction is a ratio of two unsigned 256-bit integers.  A fraction is valid
// only when its denominator is non-zero.
type Fraction struct {
	N uint256.Int
	D uint256.Int
}

// Fraction112 is a ratio of two unsigned 112-bit integers, as used for
// compactly stored rates.
type Fraction112 struct {
	N word.Uint112
	D word.Uint112
}

// NewFraction constructs a fraction from two machine integers.
func NewFraction(n, d uint64) Fraction {
	return Fraction{*uint256.NewInt(n), *uint256.NewInt(d)}
}

// ZeroFraction returns the fraction 0 / 1.
func ZeroFraction() Fraction {
	return NewFraction(0, 1)
}

// ZeroFraction112 returns the fraction 0 / 1.
func ZeroFraction112() Fraction112 {
	return Fraction112{word.WrapUint112(uint256.NewInt(0)), word.WrapUint112(uint256.NewInt(1))}
}

// IsValid checks whether the denominator is non-zero.
func (f Fraction) IsValid() bool {
	return !f.D.IsZero()
}

// IsPositive checks whether this is a valid fraction whose numerator is
// non-zero.
func (f Fraction) IsPositive() bool {
	return f.IsValid() && !f.N.IsZero()
}

// Inverse returns d / n, failing with ErrInvalidFraction if that is not valid.
func (f Fraction) Inverse() (Fraction, error) {
	inv := Fraction{f.D, f.N}
	//
	if !inv.IsValid() {
		return Fraction{}, fmt.Errorf("inverse of %s: %w", f, ErrInvalidFraction)
	}
	//
	return inv, nil
}

// ToFraction112 scales both components of this fraction down so that each fits
// in 112 bits, failing with ErrInvalidFraction when the denominator vanishes.
func (f Fraction) ToFraction112() (Fraction112, error) {
	r, err := TruncatedFraction(f, word.W112.Max())
	if err != nil {
		return Fraction112{}, err
	}
	//
	return Fraction112{word.WrapUint112(&r.N), word.WrapUint112(&r.D)}, nil
}

// Decimal returns the value of this fraction as a decimal, rounded to a given
// number of places.  This is for display purposes only.
func (f Fraction) Decimal(places int32) decimal.Decimal {
	if !f.IsValid() {
		return decimal.Zero
	}
	//
	n := decimal.NewFromBigInt(f.N.ToBig(), 0)
	d := decimal.NewFromBigInt(f.D.ToBig(), 0)
	//
	return n.DivRound(d, places)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%s/%s", f.N.Dec(), f.D.Dec())
}

// IsValid checks whether the denominator is non-zero.
func (f Fraction112) IsValid() bool {
	return !f.D.Int().IsZero()
}

// IsPositive checks whether this is a valid fraction whose numerator is
// non-zero.
func (f Fraction112) IsPositive() bool {
	return f.IsValid() && !f.N.Int().IsZero()
}

// Inverse returns d / n, failing with ErrInvalidFraction if that is not valid.
func (f Fraction112) Inverse() (Fraction112, error) {
	inv := Fraction112{f.D, f.N}
	//
	if !inv.IsValid() {
		return Fraction112{}, fmt.Errorf("inverse of %s: %w", f, ErrInvalidFraction)
	}
	//
	return inv, nil
}

// FromFraction112 widens a 112-bit fraction.
func FromFraction112(f Fraction112) Fraction {
	return Fraction{*f.N.Int(), *f.D.Int()}
}

func (f Fraction112) String() string {
	return fmt.Sprintf("%s/%s", f.N, f.D)
}
