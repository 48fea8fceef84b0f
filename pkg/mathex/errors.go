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
	"errors"

	"github.com/holiman/uint256"
)

// ErrInvalidFraction signals a fraction with a zero denominator, either given
// as input or produced as a result.
var ErrInvalidFraction = errors.New("invalid fraction")

// PPMResolution is the denominator of a parts-per-million quantity, such that
// 1% is 10000.
const PPMResolution = 1_000_000

// maxUint256 is 2^256 - 1.  This must never be modified.
var maxUint256 = new(uint256.Int).Not(new(uint256.Int))

// MaxUint256 returns 2^256 - 1.
func MaxUint256() *uint256.Int {
	return new(uint256.Int).Set(maxUint256)
}
