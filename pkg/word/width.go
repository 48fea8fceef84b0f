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

// Width is the number of bits of an unsigned fixed-width integer.  Valid widths
// are the multiples of 8 between 8 and 256 (inclusive).
type Width uint16

// Named widths for which a statically typed variant exists.
const (
	W32  Width = 32
	W112 Width = 112
	W128 Width = 128
	W256 Width = 256
)

// NewWidth checks that a given number of bits forms a valid width.
func NewWidth(bits uint) (Width, error) {
	if bits == 0 || bits > 256 || bits%8 != 0 {
		return 0, fmt.Errorf("invalid bitwidth %d", bits)
	}
	//
	return Width(bits), nil
}

// Max returns the largest value representable in this width, i.e. 2^w - 1.
func (w Width) Max() *uint256.Int {
	if w >= W256 {
		return new(uint256.Int).Not(new(uint256.Int))
	}
	//
	max := new(uint256.Int).Lsh(uint256.NewInt(1), uint(w))
	//
	return max.Sub(max, uint256.NewInt(1))
}

// Fits determines whether or not a given value is representable in this width.
func (w Width) Fits(x *uint256.Int) bool {
	return uint(x.BitLen()) <= uint(w)
}

// wrap reduces z modulo 2^w in place.
func (w Width) wrap(z *uint256.Int) *uint256.Int {
	if w >= W256 {
		return z
	}
	//
	return z.And(z, w.Max())
}

func (w Width) String() string {
	return fmt.Sprintf("uint%d", uint(w))
}
