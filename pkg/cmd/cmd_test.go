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
package cmd

import (
	"testing"

	"github.com/consensys/go-mathex/pkg/mathex"
	"github.com/consensys/go-mathex/pkg/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseWord(t *testing.T) {
	x := parseWord("255:8")
	assert.Equal(t, "uint8(255)", x.String())
	//
	y := parseWord("7:uint112")
	assert.Equal(t, "uint112(7)", y.String())
	//
	z := parseWord("0x10")
	assert.Equal(t, "uint256(16)", z.String())
}

func Test_ParseFraction(t *testing.T) {
	assert.Equal(t, mathex.NewFraction(3, 4), parseFraction("3/4"))
	assert.Equal(t, mathex.NewFraction(5, 1), parseFraction("5"))
}

func Test_ParseUint512(t *testing.T) {
	// 2^256 + 3
	x := parseUint512("115792089237316195423570985008687907853269984665640564039457584007913129639939")
	assert.Equal(t, "1", x.Hi.Dec())
	assert.Equal(t, "3", x.Lo.Dec())
}

func Test_EvalArith(t *testing.T) {
	x, y := parseWord("250:8"), parseWord("10:8")
	//
	_, err := evalArith(word.Add, x, y, false, false)
	assert.ErrorIs(t, err, word.ErrOverflow)
	//
	r, err := evalArith(word.Add, x, y, true, false)
	require.NoError(t, err)
	assert.Equal(t, "uint8(4)", r.String())
	// Mixed widths
	r, err = evalArith(word.Add, x, parseWord("10:16"), false, false)
	require.NoError(t, err)
	assert.Equal(t, "uint16(260)", r.String())
	// Compound assignment requires the left operand to be wider
	_, err = evalArith(word.Add, x, parseWord("10:16"), false, true)
	assert.ErrorIs(t, err, word.ErrWidthMismatch)
	//
	r, err = evalArith(word.Sub, parseWord("10:16"), x, true, true)
	require.NoError(t, err)
	assert.Equal(t, "uint16(65296)", r.String())
}

func Test_FormatFraction(t *testing.T) {
	assert.Equal(t, "1/4 (0.25)", formatFraction(mathex.NewFraction(1, 4), 18))
	assert.Equal(t, "2/3 (0.667)", formatFraction(mathex.NewFraction(2, 3), 3))
}

func Test_FindEnclosingLine(t *testing.T) {
	text := "first\nsecond\nthird"
	//
	line, offset, num := findEnclosingLine(8, text)
	assert.Equal(t, "second", line)
	assert.Equal(t, 6, offset)
	assert.Equal(t, 2, num)
	// Past the end
	line, _, num = findEnclosingLine(100, text)
	assert.Equal(t, "third", line)
	assert.Equal(t, 3, num)
}
