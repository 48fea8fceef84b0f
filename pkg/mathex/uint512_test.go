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
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-mathex/pkg/word"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bigMaxUint112 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))
	bigMaxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	bigMaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// Values used for the 512-bit tests.
func testArray() []*big.Int {
	return []*big.Int{
		big.NewInt(0),
		big.NewInt(100),
		big.NewInt(10_000),
		bigMaxUint128,
		new(big.Int).Rsh(bigMaxUint256, 1),
		new(big.Int).Sub(bigMaxUint256, bigMaxUint128),
		bigMaxUint256,
	}
}

// Values of the form 2^p + a, as used for the division tests.
func mulDivArray(bits []uint, offsets []int64) []*big.Int {
	var values []*big.Int
	//
	for _, p := range bits {
		for _, a := range offsets {
			v := new(big.Int).Lsh(big.NewInt(1), p)
			v.Add(v, big.NewInt(a))
			//
			if v.Sign() > 0 && v.Cmp(bigMaxUint256) <= 0 {
				values = append(values, v)
			}
		}
	}
	//
	return values
}

func Test_Mul512(t *testing.T) {
	for _, x := range testArray() {
		for _, y := range testArray() {
			// Bruteforce solution
			e := new(big.Int).Mul(x, y)
			hi := new(big.Int).Rsh(e, 256)
			lo := new(big.Int).And(e, bigMaxUint256)
			// Check for a match
			r := Mul512(u256(x), u256(y))
			assert.Equal(t, hi.String(), r.Hi.Dec(), "mul512(%s, %s).hi", x, y)
			assert.Equal(t, lo.String(), r.Lo.Dec(), "mul512(%s, %s).lo", x, y)
		}
	}
}

func Test_Compare512(t *testing.T) {
	one := big.NewInt(1)
	//
	for _, a := range testArray() {
		for _, b := range testArray() {
			xs := []*big.Int{a, new(big.Int).Mul(new(big.Int).Add(a, one), b)}
			ys := []*big.Int{b, new(big.Int).Mul(new(big.Int).Add(b, one), a)}
			//
			for _, x := range xs {
				for _, y := range ys {
					ux, uy := u512(x), u512(y)
					c := x.Cmp(y)
					//
					assert.Equal(t, c > 0, Gt512(ux, uy), "gt512(%s, %s)", x, y)
					assert.Equal(t, c < 0, Lt512(ux, uy), "lt512(%s, %s)", x, y)
					assert.Equal(t, c >= 0, Gte512(ux, uy), "gte512(%s, %s)", x, y)
					assert.Equal(t, c <= 0, Lte512(ux, uy), "lte512(%s, %s)", x, y)
				}
			}
		}
	}
}

func Test_SubMax0(t *testing.T) {
	for _, x := range testArray() {
		for _, y := range testArray() {
			e := new(big.Int).Sub(x, y)
			if e.Sign() < 0 {
				e.SetUint64(0)
			}
			//
			assert.Equal(t, e.String(), SubMax0(u256(x), u256(y)).Dec())
		}
	}
}

func Test_MulDiv_Boundaries(t *testing.T) {
	xs := mulDivArray([]uint{0, 64, 128, 192, 255, 256}, []int64{-1, 0, 1})
	zs := mulDivArray([]uint{1, 64, 128, 192, 255, 256}, []int64{-1, 0, 1})
	//
	for _, x := range xs {
		for _, y := range xs {
			for _, z := range zs {
				checkMulDiv(t, x, y, z)
			}
		}
	}
}

func Test_MulDiv_Fractions(t *testing.T) {
	var values []*big.Int
	//
	for _, p := range []uint{128, 192, 256} {
		for _, a := range []int64{3, 5, 7} {
			v := new(big.Int).Lsh(big.NewInt(1), p)
			values = append(values, v.Quo(v, big.NewInt(a)))
		}
	}
	//
	for _, x := range values {
		for _, y := range values {
			for _, z := range values {
				checkMulDiv(t, x, y, z)
			}
		}
	}
}

func Test_MulDiv_Large(t *testing.T) {
	// (2^256 - 1) * 2 / 3 fits, although the product does not.
	r, err := MulDivF(MaxUint256(), uint256.NewInt(2), uint256.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "77194726158210796949047323339125271902179989777093709359638389338608753093290", r.Dec())
	//
	_, err = MulDivF(MaxUint256(), uint256.NewInt(2), uint256.NewInt(1))
	assert.ErrorIs(t, err, word.ErrOverflow)
	// Ceiling of an exact maximum
	r, err = MulDivC(MaxUint256(), uint256.NewInt(1), uint256.NewInt(1))
	require.NoError(t, err)
	assert.True(t, r.Eq(MaxUint256()))
	// Ceiling just above the maximum
	x := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	_, err = MulDivC(x, uint256.NewInt(3), uint256.NewInt(2))
	assert.NoError(t, err)
	_, err = MulDivC(MaxUint256(), MaxUint256(), new(uint256.Int).SubUint64(MaxUint256(), 1))
	assert.ErrorIs(t, err, word.ErrOverflow)
}

func Test_MulDiv_DivisionByZero(t *testing.T) {
	one := uint256.NewInt(1)
	zero := uint256.NewInt(0)
	//
	_, err := MulDivF(one, one, zero)
	assert.ErrorIs(t, err, word.ErrDivisionByZero)
	_, err = MulDivC(one, one, zero)
	assert.ErrorIs(t, err, word.ErrDivisionByZero)
	_, err = MulMod(one, one, zero)
	assert.ErrorIs(t, err, word.ErrDivisionByZero)
}

// Check MulMod against multiplication in the scalar field of BLS12-377, whose
// modulus is a 253-bit prime.
func Test_MulMod_Field(t *testing.T) {
	modulus := uint256.MustFromBig(fr.Modulus())
	//
	for i := 0; i < 100; i++ {
		var a, b, c fr.Element
		//
		_, err := a.SetRandom()
		require.NoError(t, err)
		_, err = b.SetRandom()
		require.NoError(t, err)
		//
		c.Mul(&a, &b)
		//
		x := uint256.MustFromBig(a.BigInt(new(big.Int)))
		y := uint256.MustFromBig(b.BigInt(new(big.Int)))
		r, err := MulMod(x, y, modulus)
		//
		require.NoError(t, err)
		assert.Equal(t, c.BigInt(new(big.Int)).String(), r.Dec())
	}
}

func checkMulDiv(t *testing.T, x, y, z *big.Int) {
	t.Helper()
	// Bruteforce solutions
	xy := new(big.Int).Mul(x, y)
	floor, rem := new(big.Int).QuoRem(xy, z, new(big.Int))
	ceil := new(big.Int).Set(floor)
	//
	if rem.Sign() != 0 {
		ceil.Add(ceil, big.NewInt(1))
	}
	//
	f, err := MulDivF(u256(x), u256(y), u256(z))
	if floor.Cmp(bigMaxUint256) > 0 {
		assert.ErrorIs(t, err, word.ErrOverflow, "mulDivF(%s, %s, %s)", x, y, z)
	} else if assert.NoError(t, err, "mulDivF(%s, %s, %s)", x, y, z) {
		assert.Equal(t, floor.String(), f.Dec(), "mulDivF(%s, %s, %s)", x, y, z)
	}
	//
	c, err := MulDivC(u256(x), u256(y), u256(z))
	if ceil.Cmp(bigMaxUint256) > 0 {
		assert.ErrorIs(t, err, word.ErrOverflow, "mulDivC(%s, %s, %s)", x, y, z)
	} else if assert.NoError(t, err, "mulDivC(%s, %s, %s)", x, y, z) {
		assert.Equal(t, ceil.String(), c.Dec(), "mulDivC(%s, %s, %s)", x, y, z)
	}
}

func u256(x *big.Int) *uint256.Int {
	return uint256.MustFromBig(x)
}

func u512(x *big.Int) Uint512 {
	var r Uint512
	//
	r.Hi.SetFromBig(new(big.Int).Rsh(x, 256))
	r.Lo.SetFromBig(new(big.Int).And(x, bigMaxUint256))
	//
	return r
}
