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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the command line tool.  Any of these can be
// overridden on the command line.
type Config struct {
	// Number of concurrent workers used to evaluate vectors.  Zero means one
	// per CPU.
	Workers int `yaml:"workers"`
	// Number of decimal places used when displaying fractions.
	Precision int32 `yaml:"precision"`
	// Settings for withdrawal calculations.
	Withdrawal WithdrawalConfig `yaml:"withdrawal"`
}

// WithdrawalConfig holds the settings for withdrawal calculations.
type WithdrawalConfig struct {
	// Permit the arbitrage strategy when the pool is in deficit.
	ArbitrageDeficit bool `yaml:"arbitrage_deficit"`
}

// Default returns the configuration used in the absence of a file.
func Default() Config {
	return Config{Workers: 0, Precision: 18}
}

// Load reads a configuration file.  Settings missing from the file retain
// their default values.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	//
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return cfg, nil
}

// Parse a configuration from its YAML representation.  Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	//
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	//
	return cfg, cfg.Validate()
}

// Validate checks that the settings are within range.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers (%d)", c.Workers)
	} else if c.Precision < 0 || c.Precision > 78 {
		return fmt.Errorf("invalid precision (%d)", c.Precision)
	}
	//
	return nil
}
