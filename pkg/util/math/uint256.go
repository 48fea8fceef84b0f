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

import "github.com/holiman/uint256"

// Max returns the larger of two values.
func Max(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return new(uint256.Int).Set(b)
	}
	//
	return new(uint256.Int).Set(a)
}

// Min returns the smaller of two values.
func Min(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return new(uint256.Int).Set(a)
	}
	//
	return new(uint256.Int).Set(b)
}

// Average returns the average of two values, rounded towards zero.  This
// cannot overflow, since it is computed as (a & b) + (a ^ b) / 2.
func Average(a, b *uint256.Int) *uint256.Int {
	var and, xor uint256.Int
	//
	and.And(a, b)
	xor.Xor(a, b)
	xor.Rsh(&xor, 1)
	//
	return and.Add(&and, &xor)
}

// CeilDiv returns the ceiling of a / b.  This panics if b is zero, in the same
// way that integer division by zero does.
func CeilDiv(a, b *uint256.Int) *uint256.Int {
	if b.IsZero() {
		panic("integer divide by zero")
	}
	//
	var q, r uint256.Int
	//
	q.DivMod(a, b, &r)
	// Round up on any remainder
	if !r.IsZero() {
		q.AddUint64(&q, 1)
	}
	//
	return &q
}
