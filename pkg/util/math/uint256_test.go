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
package math

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

var maxUint256 = new(uint256.Int).Not(new(uint256.Int))

var testValues = []*uint256.Int{
	uint256.NewInt(0),
	uint256.NewInt(1),
	uint256.NewInt(2),
	uint256.NewInt(3),
	uint256.NewInt(1000),
	new(uint256.Int).Lsh(uint256.NewInt(1), 128),
	new(uint256.Int).Rsh(maxUint256, 1),
	new(uint256.Int).SubUint64(maxUint256, 1),
	maxUint256,
}

func Test_MaxMin(t *testing.T) {
	for _, a := range testValues {
		for _, b := range testValues {
			mx, mn := Max(a, b), Min(a, b)
			//
			assert.True(t, mx.Cmp(a) >= 0 && mx.Cmp(b) >= 0)
			assert.True(t, mn.Cmp(a) <= 0 && mn.Cmp(b) <= 0)
			assert.True(t, mx.Eq(a) || mx.Eq(b))
			assert.True(t, mn.Eq(a) || mn.Eq(b))
		}
	}
}

func Test_Average(t *testing.T) {
	for _, a := range testValues {
		for _, b := range testValues {
			// Bruteforce solution
			e := new(big.Int).Add(a.ToBig(), b.ToBig())
			e.Rsh(e, 1)
			//
			assert.Equal(t, e.String(), Average(a, b).Dec(), "average(%s, %s)", a.Dec(), b.Dec())
		}
	}
}

func Test_CeilDiv(t *testing.T) {
	for _, a := range testValues {
		for _, b := range testValues {
			if b.IsZero() {
				assert.Panics(t, func() { CeilDiv(a, b) })
				continue
			}
			// Bruteforce solution
			q, r := new(big.Int).QuoRem(a.ToBig(), b.ToBig(), new(big.Int))
			if r.Sign() != 0 {
				q.Add(q, big.NewInt(1))
			}
			//
			assert.Equal(t, q.String(), CeilDiv(a, b).Dec(), "ceilDiv(%s, %s)", a.Dec(), b.Dec())
		}
	}
}
