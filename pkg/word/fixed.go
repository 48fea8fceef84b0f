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

import "github.com/holiman/uint256"

// Fixed is satisfied by the statically typed words.  Each has the same
// representation, and differs only in the width its value is confined to.
type Fixed interface {
	Uint32 | Uint112 | Uint128 | Uint256
}

// fixed is the representation shared by all statically typed words.
type fixed = struct{ v uint256.Int }

func narrow[T Fixed](w Width, x *uint256.Int) (T, error) {
	z, err := New(w, x)
	//
	return T(fixed{z.value}), err
}

func truncate[T Fixed](w Width, x *uint256.Int) T {
	return T(fixed{Wrap(w, x).value})
}

func checked[T Fixed](op Op, w Width, x, y *uint256.Int) (T, error) {
	z, err := eval(op, true, w, x, y)
	//
	return T(fixed{z}), err
}

func unchecked[T Fixed](op Op, w Width, x, y *uint256.Int) T {
	// Division is the only operator which can fail here, and it is not routed
	// through this function.
	z, _ := eval(op, false, w, x, y)
	//
	return T(fixed{z})
}

func uncheckedDiv[T Fixed](w Width, x, y *uint256.Int) (T, error) {
	z, err := eval(Div, false, w, x, y)
	//
	return T(fixed{z}), err
}

// Compound assignment "x op= y", where x has width w.  On failure, x is left
// unchanged.
func compound[T Fixed](x *T, op Op, isChecked bool, w Width, y *uint256.Int) error {
	lhs := fixed(*x).v
	//
	z, err := eval(op, isChecked, w, &lhs, y)
	if err != nil {
		return err
	}
	//
	*x = T(fixed{z})
	//
	return nil
}
