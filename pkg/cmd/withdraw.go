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
	"context"
	"fmt"
	"os"

	"github.com/consensys/go-mathex/pkg/util"
	"github.com/consensys/go-mathex/pkg/vector"
	"github.com/consensys/go-mathex/pkg/withdrawal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [flags] vector_file(s)",
	Short: "compute withdrawal amounts for a set of test vectors.",
	Long: `Compute the withdrawal amounts p, q, r, s, t, u and v for each vector
	in one or more JSON files.  Each file holds an array of objects with fields
	a, b, c, e, w, m, n and x (and optionally a name).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := getConfig(cmd)
		opts := withdrawal.Options{ArbitrageDeficit: cfg.Withdrawal.ArbitrageDeficit}
		//
		if cmd.Flags().Changed("workers") {
			cfg.Workers = int(GetUint(cmd, "workers"))
		}
		//
		if cmd.Flags().Changed("arbitrage-deficit") {
			opts.ArbitrageDeficit = GetFlag(cmd, "arbitrage-deficit")
		}
		//
		failures := uint(0)
		//
		for _, filename := range args {
			failures += runVectorFile(filename, opts, cfg.Workers)
		}
		//
		if failures > 0 && GetFlag(cmd, "strict") {
			os.Exit(1)
		}
	},
}

// Evaluate all vectors in a given file, writing their results to stdout and
// returning the number which failed.
func runVectorFile(filename string, opts withdrawal.Options, workers int) uint {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	vectors, err := vector.Parse(bytes)
	if err != nil {
		printVectorError(filename, bytes, err)
		os.Exit(2)
	}
	//
	stats := util.NewPerfStats()
	//
	results, err := vector.Run(context.Background(), vectors, opts, workers)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	stats.Log(fmt.Sprintf("Evaluating %d vectors from %s", len(vectors), filename))
	//
	if err := vector.Write(os.Stdout, results); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	passed, failed := vector.Summary(results)
	log.Infof("%s: %d vectors evaluated, %d failed", filename, passed+failed, failed)
	//
	return failed
}

func init() {
	withdrawCmd.Flags().Uint("workers", 0, "number of concurrent workers (0 means one per CPU)")
	withdrawCmd.Flags().Bool("arbitrage-deficit", false, "permit arbitrage when the pool is in deficit")
	withdrawCmd.Flags().Bool("strict", false, "exit with an error if any vector fails")
	rootCmd.AddCommand(withdrawCmd)
}
