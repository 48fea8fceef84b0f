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

	"github.com/holiman/uint256"
)

// Sint256 is a signed 256-bit quantity, represented by its magnitude and sign.
type Sint256 struct {
	Value uint256.Int
	IsNeg bool
}

// ToPos256 returns the positive representation of an unsigned integer.
func ToPos256(n *uint256.Int) Sint256 {
	return Sint256{*n, false}
}

// ToNeg256 returns the negative representation of an unsigned integer.
func ToNeg256(n *uint256.Int) Sint256 {
	return Sint256{*n, true}
}

// Sign returns -1, 0 or +1.  Note that a negative zero has sign 0.
func (x Sint256) Sign() int {
	switch {
	case x.Value.IsZero():
		return 0
	case x.IsNeg:
		return -1
	default:
		return 1
	}
}

func (x Sint256) String() string {
	if x.IsNeg && !x.Value.IsZero() {
		return fmt.Sprintf("-%s", x.Value.Dec())
	}
	//
	return x.Value.Dec()
}
