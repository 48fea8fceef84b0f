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
	"math"
	"math/big"
	"testing"

	"github.com/consensys/go-mathex/pkg/word"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Exp2_Exact(t *testing.T) {
	tests := []struct {
		n, d     uint64
		expected string
	}{
		{0, 1, "170141183460469231731687303715884105728"},
		{1, 1, "340282366920938463463374607431768211452"},
		{1, 2, "240615969168004511545033772477625056924"},
		{5, 4, "404666211852346594250993303657235475941"},
		{10, 1, "174224571863520493293247799005065324255387"},
		{23, 1, "1427247692705959881058285969449495134286992372"},
		{1, 1000, "170259157223949352376704411893736837205"},
		{2083, 1000, "720866644024568490073796934252743105275"},
		{23083, 1000, "1511766924249411858095243388262008706513711287"},
	}
	//
	for _, tt := range tests {
		r, err := Exp2(NewFraction(tt.n, tt.d))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, r.N.Dec(), "exp2(%d/%d)", tt.n, tt.d)
		assert.True(t, r.D.Eq(one))
	}
}

func Test_Exp2_Overflow(t *testing.T) {
	for _, f := range []Fraction{NewFraction(23084, 1000), NewFraction(24, 1), NewFraction(1000, 1)} {
		_, err := Exp2(f)
		assert.ErrorIs(t, err, word.ErrOverflow, "exp2(%s)", f)
	}
	// Too large even for the intermediate product
	_, err := Exp2(Fraction{*MaxUint256(), *uint256.NewInt(1)})
	assert.ErrorIs(t, err, word.ErrOverflow)
}

func Test_Exp2_Invalid(t *testing.T) {
	_, err := Exp2(NewFraction(1, 0))
	assert.ErrorIs(t, err, ErrInvalidFraction)
}

func Test_Exp2_Approx(t *testing.T) {
	for n := uint64(0); n < 100; n++ {
		for d := uint64(1); d < 100; d++ {
			if float64(n)/float64(d) >= 23 {
				continue
			}
			//
			r, err := Exp2(NewFraction(n, d))
			require.NoError(t, err)
			//
			actual, _ := new(big.Float).Quo(new(big.Float).SetInt(r.N.ToBig()), new(big.Float).SetInt(r.D.ToBig())).Float64()
			expected := math.Exp2(float64(n) / float64(d))
			//
			assert.InEpsilon(t, expected, actual, 1e-12, "exp2(%d/%d)", n, d)
		}
	}
}

func Test_Exp2_Monotonic(t *testing.T) {
	var last uint256.Int
	//
	for n := uint64(0); n <= 23083; n += 7 {
		r, err := Exp2(NewFraction(n, 1000))
		require.NoError(t, err)
		assert.False(t, r.N.Lt(&last), "exp2(%d/1000)", n)
		last = r.N
	}
}

func Test_TruncatedFraction(t *testing.T) {
	maxUint128 := uint256.MustFromBig(bigMaxUint128)
	tests := []struct {
		f      Fraction
		limit  *uint256.Int
		n, d   string
		failed bool
	}{
		{NewFraction(200, 3), uint256.NewInt(100), "100", "1", false},
		{NewFraction(10, 20), uint256.NewInt(5), "2", "5", false},
		{NewFraction(3, 2), uint256.NewInt(5), "3", "2", false},
		{Fraction{*MaxUint256(), *new(uint256.Int).SubUint64(MaxUint256(), 1)}, maxUint128,
			"340282366920938463463374607431768211455", "340282366920938463463374607431768211454", false},
		{NewFraction(100, 3), uint256.NewInt(5), "", "", true},
		{NewFraction(200, 2), uint256.NewInt(3), "", "", true},
		{NewFraction(1, 0), uint256.NewInt(3), "", "", true},
		{NewFraction(1, 1), uint256.NewInt(0), "", "", true},
	}
	//
	for _, tt := range tests {
		r, err := TruncatedFraction(tt.f, tt.limit)
		//
		if tt.failed {
			assert.ErrorIs(t, err, ErrInvalidFraction, "truncate(%s, %s)", tt.f, tt.limit)
		} else if assert.NoError(t, err) {
			assert.Equal(t, tt.n, r.N.Dec())
			assert.Equal(t, tt.d, r.D.Dec())
		}
	}
}

func Test_TruncatedFraction_Idempotent(t *testing.T) {
	limits := []*big.Int{bigMaxUint112, bigMaxUint128}
	//
	for _, limit := range limits {
		for i := int64(0); i < 10; i++ {
			for j := int64(0); j < 10; j++ {
				f := Fraction{
					*uint256.MustFromBig(new(big.Int).Add(limit, big.NewInt(i))),
					*uint256.MustFromBig(new(big.Int).Sub(limit, big.NewInt(j))),
				}
				//
				r1, err := TruncatedFraction(f, u256(limit))
				require.NoError(t, err)
				assert.True(t, r1.N.ToBig().Cmp(limit) <= 0 && r1.D.ToBig().Cmp(limit) <= 0)
				//
				r2, err := TruncatedFraction(r1, u256(limit))
				require.NoError(t, err)
				assert.Equal(t, r1, r2)
			}
		}
	}
}

func Test_WeightedAverage(t *testing.T) {
	r, err := WeightedAverage(NewFraction(1, 2), NewFraction(1, 4), uint256.NewInt(1), uint256.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "6/16", r.String())
	// Truncated, since the numerator is 8 * (2^256 - 1)
	m := Fraction{*MaxUint256(), *uint256.NewInt(1)}
	r, err = WeightedAverage(m, m, uint256.NewInt(3), uint256.NewInt(5))
	require.NoError(t, err)
	assert.True(t, r.N.Eq(MaxUint256()))
	assert.Equal(t, "1", r.D.Dec())
	//
	_, err = WeightedAverage(NewFraction(1, 0), m, uint256.NewInt(1), uint256.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidFraction)
	_, err = WeightedAverage(m, m, uint256.NewInt(0), uint256.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidFraction)
}

func Test_WeightedAverage_Self(t *testing.T) {
	values := []uint64{1, 2, 3, 0xFFFFFFFF, ^uint64(0)}
	weights := []uint64{1, 2, 4, 8}
	//
	for _, n := range values {
		for _, d := range values {
			f := NewFraction(n, d)
			//
			for _, w1 := range weights {
				for _, w2 := range weights {
					r, err := WeightedAverage(f, f, uint256.NewInt(w1), uint256.NewInt(w2))
					require.NoError(t, err)
					// Cross multiply to compare ratios
					lhs := new(big.Int).Mul(r.N.ToBig(), f.D.ToBig())
					rhs := new(big.Int).Mul(r.D.ToBig(), f.N.ToBig())
					assert.Equal(t, 0, lhs.Cmp(rhs), "weightedAverage(%s, %s, %d, %d)", f, f, w1, w2)
				}
			}
		}
	}
}

func Test_IsInRange(t *testing.T) {
	base := NewFraction(1, 1)
	//
	assert.True(t, IsInRange(base, NewFraction(104, 100), 50_000))
	assert.False(t, IsInRange(base, NewFraction(106, 100), 50_000))
	assert.False(t, IsInRange(base, NewFraction(94, 100), 50_000))
	assert.True(t, IsInRange(base, NewFraction(95, 100), 50_000))
	assert.True(t, IsInRange(base, NewFraction(105, 100), 50_000))
	// Deviation above 100% clamps the lower bound
	assert.True(t, IsInRange(base, NewFraction(0, 100), 2_000_000))
}

func Test_IsInRange_Self(t *testing.T) {
	values := []uint64{1, 2, 3, 0xFFFFFFFF, ^uint64(0)}
	//
	for _, n := range values {
		for _, d := range values {
			f := NewFraction(n, d)
			//
			assert.True(t, IsInRange(f, f, 0), "isInRange(%s, %s, 0)", f, f)
			// Large components cannot overflow
			g := Fraction{*new(uint256.Int).Lsh(&f.N, 192), *new(uint256.Int).Lsh(&f.D, 192)}
			assert.True(t, IsInRange(g, f, 0), "isInRange(%s, %s, 0)", g, f)
		}
	}
}

func Test_FractionLibrary(t *testing.T) {
	assert.True(t, ZeroFraction().IsValid())
	assert.False(t, ZeroFraction().IsPositive())
	assert.False(t, NewFraction(1, 0).IsValid())
	assert.False(t, NewFraction(1, 0).IsPositive())
	assert.True(t, NewFraction(1, 3).IsPositive())
	//
	inv, err := NewFraction(1, 3).Inverse()
	require.NoError(t, err)
	assert.Equal(t, "3/1", inv.String())
	//
	_, err = ZeroFraction().Inverse()
	assert.ErrorIs(t, err, ErrInvalidFraction)
	//
	assert.True(t, ZeroFraction112().IsValid())
	assert.False(t, ZeroFraction112().IsPositive())
	_, err = ZeroFraction112().Inverse()
	assert.ErrorIs(t, err, ErrInvalidFraction)
}

func Test_Fraction112(t *testing.T) {
	// Small fractions are unchanged
	f, err := NewFraction(2, 3).ToFraction112()
	require.NoError(t, err)
	assert.Equal(t, "2/3", f.String())
	assert.Equal(t, NewFraction(2, 3), FromFraction112(f))
	// Large fractions are scaled down
	g := Fraction{*MaxUint256(), *new(uint256.Int).Rsh(MaxUint256(), 1)}
	f, err = g.ToFraction112()
	require.NoError(t, err)
	assert.LessOrEqual(t, f.N.Int().BitLen(), 112)
	assert.LessOrEqual(t, f.D.Int().BitLen(), 112)
	// Denominator vanishes
	_, err = Fraction{*MaxUint256(), *uint256.NewInt(1)}.ToFraction112()
	assert.ErrorIs(t, err, ErrInvalidFraction)
}

func Test_Fraction_Decimal(t *testing.T) {
	assert.Equal(t, "0.3333", NewFraction(1, 3).Decimal(4).String())
	assert.Equal(t, "2.5", NewFraction(5, 2).Decimal(4).String())
	assert.Equal(t, "0", NewFraction(5, 0).Decimal(4).String())
}

func Test_Sint256(t *testing.T) {
	five := uint256.NewInt(5)
	//
	assert.Equal(t, "5", ToPos256(five).String())
	assert.Equal(t, "-5", ToNeg256(five).String())
	assert.Equal(t, 1, ToPos256(five).Sign())
	assert.Equal(t, -1, ToNeg256(five).Sign())
	assert.Equal(t, 0, ToNeg256(new(uint256.Int)).Sign())
	assert.Equal(t, "0", ToNeg256(new(uint256.Int)).String())
}
