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
package vector

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/consensys/go-mathex/pkg/withdrawal"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Vectors_Golden(t *testing.T) {
	checkGolden(t, "vectors", withdrawal.Options{}, 4)
}

func Test_Vectors_Golden_Arbitrage(t *testing.T) {
	checkGolden(t, "vectors-arbitrage", withdrawal.Options{ArbitrageDeficit: true}, 1)
}

func Test_Vectors_Summary(t *testing.T) {
	vectors, err := Load("testdata/vectors.json")
	require.NoError(t, err)
	//
	results, err := Run(context.Background(), vectors, withdrawal.Options{}, 0)
	require.NoError(t, err)
	//
	passed, failed := Summary(results)
	assert.Equal(t, uint(8), passed)
	assert.Equal(t, uint(2), failed)
	assert.ErrorIs(t, results[8].Err, withdrawal.ErrInputInvalid)
}

func Test_Vectors_Cancelled(t *testing.T) {
	vectors, err := Load("testdata/vectors.json")
	require.NoError(t, err)
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	//
	_, err = Run(ctx, vectors, withdrawal.Options{}, 2)
	assert.True(t, errors.Is(err, context.Canceled))
}

func Test_Parse_Names(t *testing.T) {
	vectors, err := Parse([]byte(`[{"a":1,"b":2,"c":3,"e":4,"w":5,"m":6,"n":7,"x":"4"}]`))
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Equal(t, "#0", vectors[0].Name)
	assert.Equal(t, "4", vectors[0].Input.X.Dec())
	assert.Equal(t, "6", vectors[0].Input.M.Dec())
}

func Test_Parse_LargeNumber(t *testing.T) {
	// This would lose precision if read through a float64
	vectors, err := Parse([]byte(`[{"a":123456789012345678901234567890,"b":0,"c":0,"e":0,"w":0,"m":0,"n":0,"x":0}]`))
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", vectors[0].Input.A.Dec())
}

func Test_Parse_Invalid(t *testing.T) {
	inputs := []string{
		`[{"a":1`,
		`{"a":1}`,
		`[1]`,
		`[{"a":1,"b":2,"c":3,"e":4,"w":5,"m":6,"n":7}]`,
		`[{"a":1,"b":2,"c":3,"e":4,"w":5,"m":6,"n":7,"x":true}]`,
		`[{"a":1.5,"b":2,"c":3,"e":4,"w":5,"m":6,"n":7,"x":1}]`,
		`[{"a":"-1","b":2,"c":3,"e":4,"w":5,"m":6,"n":7,"x":1}]`,
		`[{"a":"0x10","b":2,"c":3,"e":4,"w":5,"m":6,"n":7,"x":1}]`,
	}
	//
	for _, input := range inputs {
		_, err := Parse([]byte(input))
		//
		var perr *ParseError
		//
		assert.True(t, errors.As(err, &perr), "%s", input)
	}
}

func checkGolden(t *testing.T, name string, opts withdrawal.Options, workers int) {
	t.Helper()
	//
	vectors, err := Load("testdata/vectors.json")
	require.NoError(t, err)
	//
	results, err := Run(context.Background(), vectors, opts, workers)
	require.NoError(t, err)
	//
	var buf bytes.Buffer
	//
	require.NoError(t, Write(&buf, results))
	//
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}
