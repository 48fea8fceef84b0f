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
package withdrawal

import (
	"github.com/consensys/go-mathex/pkg/mathex"
	"github.com/consensys/go-mathex/pkg/word"
	"github.com/holiman/uint256"
)

// calc evaluates checked 256-bit arithmetic, remembering the first failure.
// Once a failure has occurred, every subsequent operation yields zero.
type calc struct {
	err error
}

func (c *calc) add(x, y *uint256.Int) *uint256.Int {
	return c.apply(word.Add, x, y)
}

func (c *calc) sub(x, y *uint256.Int) *uint256.Int {
	return c.apply(word.Sub, x, y)
}

func (c *calc) mul(x, y *uint256.Int) *uint256.Int {
	return c.apply(word.Mul, x, y)
}

func (c *calc) div(x, y *uint256.Int) *uint256.Int {
	return c.apply(word.Div, x, y)
}

func (c *calc) mulDivF(x, y, z *uint256.Int) *uint256.Int {
	if c.err != nil {
		return new(uint256.Int)
	}
	//
	r, err := mathex.MulDivF(x, y, z)
	if err != nil {
		c.err = err
		return new(uint256.Int)
	}
	//
	return r
}

func (c *calc) apply(op word.Op, x, y *uint256.Int) *uint256.Int {
	if c.err != nil {
		return new(uint256.Int)
	}
	//
	z, err := word.Checked(op, word.Wrap(word.W256, x), word.Wrap(word.W256, y))
	if err != nil {
		c.err = err
		return new(uint256.Int)
	}
	//
	return z.Int()
}
