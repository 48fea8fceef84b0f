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

import "errors"

// ErrOverflow is returned by checked operations whose exact result does not fit
// in the target width.
var ErrOverflow = errors.New("overflow")

// ErrUnderflow is returned by checked subtraction when the subtrahend exceeds
// the minuend.
var ErrUnderflow = errors.New("underflow")

// ErrDivisionByZero is returned by every division, checked or not, when the
// divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrWidthMismatch is returned by compound assignment when the right-hand
// operand is wider than the left-hand one.
var ErrWidthMismatch = errors.New("incompatible operand widths")
