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
	"math/big"

	util_math "github.com/consensys/go-mathex/pkg/util/math"
	"github.com/consensys/go-mathex/pkg/word"
	"github.com/holiman/uint256"
)

var (
	// one is 2^127, the denominator of every result of Exp2.
	one = new(uint256.Int).Lsh(uint256.NewInt(1), 127)
	// ln2 is ln(2) * 2^127.
	ln2 = hexInt("58b90bfbe8e7bcd5e4f1d9cc01f97b57")
	// expLimit is 16 * 2^127, above which the result would not fit.
	expLimit = new(uint256.Int).Lsh(one, 4)
	// residual is 2^-3 (scaled).  The input is reduced modulo this.
	residual = new(uint256.Int).Rsh(one, 3)
	// factorial20 is 20!
	factorial20 = uint256.NewInt(0x21c3677c82b40000)
)

// taylorCoefficients holds 20!/k! for k = 2..20, such that the Taylor series
// of e^y (scaled by 20!) is accumulated one term at a time.
var taylorCoefficients = []uint64{
	0x10e1b3be415a0000,
	0x05a0913f6b1e0000,
	0x0168244fdac78000,
	0x004807432bc18000,
	0x000c0135dca04000,
	0x0001b707b1cdc000,
	0x000036e0f639b800,
	0x00000618fee9f800,
	0x0000009c197dcc00,
	0x0000000e30dce400,
	0x000000012ebd1300,
	0x0000000017499f00,
	0x0000000001a9d480,
	0x00000000001c6380,
	0x000000000001c638,
	0x0000000000001ab8,
	0x000000000000017c,
	0x0000000000000014,
	0x0000000000000001,
}

// binaryExponent represents e^(2^k) as the ratio num / den, applied when bit k
// (scaled) of the input is set.
type binaryExponent struct {
	bit *uint256.Int
	num *uint256.Int
	den *uint256.Int
}

var binaryExponents = []binaryExponent{
	{new(uint256.Int).Rsh(one, 3), hexInt("1c3d6a24ed82218787d624d3e5eba95f9"), hexInt("18ebef9eac820ae8682b9793ac6d1e776")},
	{new(uint256.Int).Rsh(one, 2), hexInt("18ebef9eac820ae8682b9793ac6d1e778"), hexInt("1368b2fc6f9609fe7aceb46aa619baed4")},
	{new(uint256.Int).Rsh(one, 1), hexInt("1368b2fc6f9609fe7aceb46aa619baed5"), hexInt("0bc5ab1b16779be3575bd8f0520a9f21f")},
	{new(uint256.Int).Set(one), hexInt("0bc5ab1b16779be3575bd8f0520a9f21e"), hexInt("0454aaa8efe072e7f6ddbab84b40a55c9")},
	{new(uint256.Int).Lsh(one, 1), hexInt("0454aaa8efe072e7f6ddbab84b40a55c5"), hexInt("00960aadc109e7a3bf4578099615711ea")},
	{new(uint256.Int).Lsh(one, 2), hexInt("00960aadc109e7a3bf4578099615711d7"), hexInt("0002bf84208204f5977f9a8cf01fdce3d")},
	{new(uint256.Int).Lsh(one, 3), hexInt("0002bf84208204f5977f9a8cf01fdc307"), hexInt("0000003c6ab775dd0b95b4cbee7e65d11")},
}

// Exp2 returns 2^f as a fraction whose denominator is 2^127.  This is computed
// as e^(f * ln 2), by rewriting the exponent as a sum of binary exponents plus
// a small residual.  The exponentiation of each binary exponent is taken from
// a table, whilst that of the residual is calculated via the Taylor series for
// e^x.  For example:
//
// e^5.521692859 = e^(4 + 1 + 0.5 + 0.021692859) = e^4 * e^1 * e^0.5 * e^0.021692859
//
// This fails with ErrOverflow when f is 16 / ln 2 (roughly 23.08) or more.
func Exp2(f Fraction) (Fraction, error) {
	if !f.IsValid() {
		return Fraction{}, fmt.Errorf("exp2(%s): %w", f, ErrInvalidFraction)
	}
	//
	x, err := MulDivF(ln2, &f.N, &f.D)
	if err != nil {
		return Fraction{}, fmt.Errorf("exp2(%s): %w", f, err)
	} else if !x.Lt(expLimit) {
		return Fraction{}, fmt.Errorf("exp2(%s): %w", f, word.ErrOverflow)
	}
	// Arithmetic below is modulo 2^256, though it cannot wrap for inputs
	// under the limit.
	var y, z, n, t uint256.Int
	//
	y.Mod(x, residual)
	z.Set(&y)
	//
	for _, c := range taylorCoefficients {
		z.Mul(&z, &y)
		z.Div(&z, one)
		t.Mul(&z, uint256.NewInt(c))
		n.Add(&n, &t)
	}
	// Divide by 20! and then add y^1 / 1! + y^0 / 0!
	n.Div(&n, factorial20)
	n.Add(&n, &y)
	n.Add(&n, one)
	//
	for _, e := range binaryExponents {
		if !t.And(x, e.bit).IsZero() {
			n.Mul(&n, e.num)
			n.Div(&n, e.den)
		}
	}
	//
	return Fraction{n, *one}, nil
}

// TruncatedFraction scales both components of a fraction down by the same
// factor, such that each is at most limit.  This fails with ErrInvalidFraction
// if the given fraction is invalid, or if the scaled denominator is zero.
func TruncatedFraction(f Fraction, limit *uint256.Int) (Fraction, error) {
	if !f.IsValid() || limit.IsZero() {
		return Fraction{}, fmt.Errorf("truncate %s to %s: %w", f, limit.Dec(), ErrInvalidFraction)
	}
	//
	var (
		r     Fraction
		scale = util_math.CeilDiv(util_math.Max(&f.N, &f.D), limit)
	)
	//
	r.N.Div(&f.N, scale)
	r.D.Div(&f.D, scale)
	//
	if !r.IsValid() {
		return Fraction{}, fmt.Errorf("truncate %s to %s: %w", f, limit.Dec(), ErrInvalidFraction)
	}
	//
	return r, nil
}

// WeightedAverage returns the average of two fractions, weighted by w1 and w2
// respectively:
//
// (n1*d2*w1 + d1*n2*w2) / (d1*d2*(w1+w2))
//
// The components are computed exactly and, should either exceed 256 bits, the
// result is truncated to fit.
func WeightedAverage(f1, f2 Fraction, w1, w2 *uint256.Int) (Fraction, error) {
	if !f1.IsValid() || !f2.IsValid() || (w1.IsZero() && w2.IsZero()) {
		return Fraction{}, fmt.Errorf("weighted average of %s and %s: %w", f1, f2, ErrInvalidFraction)
	}
	//
	var (
		n1, d1 = f1.N.ToBig(), f1.D.ToBig()
		n2, d2 = f2.N.ToBig(), f2.D.ToBig()
		lhs    = product(n1, d2, w1.ToBig())
		rhs    = product(d1, n2, w2.ToBig())
		n      = lhs.Add(lhs, rhs)
		d      = product(d1, d2, new(big.Int).Add(w1.ToBig(), w2.ToBig()))
	)
	//
	return fromBigFraction(n, d)
}

// IsInRange checks whether the deviation of an offset sample from a base sample
// is within a permitted range, given in PPM.  For example, if the maximum
// permitted deviation is 5% then this evaluates 95% * base <= offset <= 105% *
// base.  The lower bound is clamped at zero.
func IsInRange(base, offset Fraction, maxDeviationPPM uint32) bool {
	var (
		dev  = big.NewInt(int64(maxDeviationPPM))
		ppm  = big.NewInt(PPMResolution)
		low  = new(big.Int).Sub(ppm, dev)
		high = new(big.Int).Add(ppm, dev)
	)
	//
	if low.Sign() < 0 {
		low.SetUint64(0)
	}
	//
	var (
		bn, bd = base.N.ToBig(), base.D.ToBig()
		on, od = offset.N.ToBig(), offset.D.ToBig()
		lower  = product(bn, od, low)
		mid    = product(bd, on, ppm)
		upper  = product(bn, od, high)
	)
	//
	return lower.Cmp(mid) <= 0 && mid.Cmp(upper) <= 0
}

// Construct a fraction from arbitrary precision components, truncating it when
// necessary.
func fromBigFraction(n, d *big.Int) (Fraction, error) {
	if n.BitLen() > 256 || d.BitLen() > 256 {
		scale := new(big.Int).Set(n)
		if d.Cmp(n) > 0 {
			scale.Set(d)
		}
		// scale = ceil(max(n, d) / (2^256 - 1))
		limit := maxUint256.ToBig()
		scale.Add(scale, new(big.Int).Sub(limit, big.NewInt(1)))
		scale.Quo(scale, limit)
		//
		n = new(big.Int).Quo(n, scale)
		d = new(big.Int).Quo(d, scale)
	}
	//
	var f Fraction
	//
	f.N.SetFromBig(n)
	f.D.SetFromBig(d)
	//
	if !f.IsValid() {
		return Fraction{}, fmt.Errorf("fraction %s/%s: %w", n, d, ErrInvalidFraction)
	}
	//
	return f, nil
}

func product(x, y, z *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	//
	return r.Mul(r, z)
}

// Construct a constant from its hexadecimal representation.
func hexInt(s string) *uint256.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("invalid hex constant %s", s))
	}
	//
	return uint256.MustFromBig(v)
}
