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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_Load(t *testing.T) {
	cfg, err := Load("testdata/mathex.yaml")
	require.NoError(t, err)
	//
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, int32(6), cfg.Precision)
	assert.True(t, cfg.Withdrawal.ArbitrageDeficit)
}

func Test_Config_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("workers: 2\n"))
	require.NoError(t, err)
	//
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, Default().Precision, cfg.Precision)
	assert.False(t, cfg.Withdrawal.ArbitrageDeficit)
	// Empty file
	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Config_Invalid(t *testing.T) {
	inputs := []string{
		"workers: -1\n",
		"precision: 100\n",
		"unknown: 1\n",
		"workers: [1, 2]\n",
	}
	//
	for _, input := range inputs {
		_, err := Parse([]byte(input))
		assert.Error(t, err, input)
	}
}

func Test_Config_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
