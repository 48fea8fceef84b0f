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
)

// Uint512 is an unsigned 512-bit integer, split into its 256 most significant
// bits (Hi) and its 256 least significant bits (Lo).
type Uint512 struct {
	Hi uint256.Int
	Lo uint256.Int
}

func (x Uint512) String() string {
	if x.Hi.IsZero() {
		return x.Lo.Dec()
	}
	//
	return fmt.Sprintf("%s,%s", x.Hi.Dec(), x.Lo.Dec())
}

// Mul512 returns the exact product x * y.  The high half is recovered from the
// product modulo 2^256 - 1 and the product modulo 2^256 (Chinese remainder).
func Mul512(x, y *uint256.Int) Uint512 {
	var p, q uint256.Int
	//
	p.MulMod(x, y, maxUint256)
	q.Mul(x, y)
	//
	if !p.Lt(&q) {
		return Uint512{*p.Sub(&p, &q), q}
	}
	// Borrow from the modulus
	p.Sub(&p, &q)
	p.SubUint64(&p, 1)
	//
	return Uint512{p, q}
}

// Gt512 returns x > y.
func Gt512(x, y Uint512) bool {
	return x.Hi.Gt(&y.Hi) || (x.Hi.Eq(&y.Hi) && x.Lo.Gt(&y.Lo))
}

// Lt512 returns x < y.
func Lt512(x, y Uint512) bool {
	return x.Hi.Lt(&y.Hi) || (x.Hi.Eq(&y.Hi) && x.Lo.Lt(&y.Lo))
}

// Gte512 returns x >= y.
func Gte512(x, y Uint512) bool {
	return !Lt512(x, y)
}

// Lte512 returns x <= y.
func Lte512(x, y Uint512) bool {
	return !Gt512(x, y)
}

// MulMod returns x * y mod z, where the product is not truncated.
func MulMod(x, y, z *uint256.Int) (*uint256.Int, error) {
	if z.IsZero() {
		return nil, word.ErrDivisionByZero
	}
	//
	return new(uint256.Int).MulMod(x, y, z), nil
}

// MulDivF returns the largest integer smaller than or equal to x * y / z.  This
// fails with ErrOverflow if the result does not fit in 256 bits.
func MulDivF(x, y, z *uint256.Int) (*uint256.Int, error) {
	if z.IsZero() {
		return nil, word.ErrDivisionByZero
	}
	//
	xy := Mul512(x, y)
	// x * y < 2^256
	if xy.Hi.IsZero() {
		return new(uint256.Int).Div(&xy.Lo, z), nil
	}
	// x * y / z < 2^256
	if !xy.Hi.Lt(z) {
		return nil, fmt.Errorf("%s * %s / %s: %w", x.Dec(), y.Dec(), z.Dec(), word.ErrOverflow)
	}
	// n = x * y - (x * y % z), hence n / z = floor(x * y / z)
	var m uint256.Int
	//
	m.MulMod(x, y, z)
	n := sub512(xy, &m)
	//
	if n.Hi.IsZero() {
		return new(uint256.Int).Div(&n.Lo, z), nil
	}
	// Largest power of 2 dividing z
	var p, zp uint256.Int
	//
	p.Neg(z)
	p.And(&p, z)
	// Since n is divisible by z, it is divisible by p.  Then z / p is odd and,
	// hence, invertible modulo 2^256.
	q := div512(n, &p)
	zp.Div(z, &p)
	//
	return q.Mul(q, inv256(&zp)), nil
}

// MulDivC returns the smallest integer larger than or equal to x * y / z.  This
// fails with ErrOverflow if the result does not fit in 256 bits.
func MulDivC(x, y, z *uint256.Int) (*uint256.Int, error) {
	w, err := MulDivF(x, y, z)
	if err != nil {
		return nil, err
	}
	//
	var m uint256.Int
	//
	if m.MulMod(x, y, z); m.IsZero() {
		return w, nil
	} else if w.Eq(maxUint256) {
		return nil, fmt.Errorf("%s * %s / %s: %w", x.Dec(), y.Dec(), z.Dec(), word.ErrOverflow)
	}
	//
	return w.AddUint64(w, 1), nil
}

// SubMax0 returns the maximum of x - y and 0.
func SubMax0(x, y *uint256.Int) *uint256.Int {
	if x.Gt(y) {
		return new(uint256.Int).Sub(x, y)
	}
	//
	return new(uint256.Int)
}

// Returns x - y, given that x >= y.
func sub512(x Uint512, y *uint256.Int) Uint512 {
	if !x.Lo.Lt(y) {
		x.Lo.Sub(&x.Lo, y)
		return x
	}
	//
	x.Hi.SubUint64(&x.Hi, 1)
	x.Lo.Sub(&x.Lo, y)
	//
	return x
}

// Returns x / p, given that p is a power of 2 which divides x.
func div512(x Uint512, p *uint256.Int) *uint256.Int {
	var inv, lo uint256.Int
	// inv = 2^256 / p
	inv.Neg(p)
	inv.Div(&inv, p)
	inv.AddUint64(&inv, 1)
	//
	lo.Div(&x.Lo, p)
	//
	return inv.Mul(&x.Hi, &inv).Or(&inv, &lo)
}

// Returns the inverse of d modulo 2^256, given that d is odd.  This uses
// Newton-Raphson iteration, each step of which doubles the number of correct
// low-order bits.
func inv256(d *uint256.Int) *uint256.Int {
	var (
		x   = uint256.NewInt(1)
		two = uint256.NewInt(2)
		t   uint256.Int
	)
	//
	for range 8 {
		t.Mul(x, d)
		t.Sub(two, &t)
		x.Mul(x, &t)
	}
	//
	return x
}
