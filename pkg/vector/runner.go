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
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/consensys/go-mathex/pkg/withdrawal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result records the outcome of evaluating a single vector.  Exactly one of
// Output or Err is meaningful.
type Result struct {
	Vector Vector
	Output withdrawal.Output
	Err    error
}

// Run evaluates a set of vectors using (at most) a given number of concurrent
// workers, where a non-positive number means one per CPU.  Results are
// returned in the same order as the vectors.  A vector which fails to
// evaluate does not prevent the others from being evaluated; rather, its
// failure is recorded in its result.  The only error returned is that of the
// context being cancelled.
func Run(ctx context.Context, vectors []Vector, opts withdrawal.Options, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	//
	var (
		results = make([]Result, len(vectors))
		g, gctx = errgroup.WithContext(ctx)
	)
	//
	g.SetLimit(workers)
	//
	for i, v := range vectors {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			//
			out, err := withdrawal.Calculate(v.Input, opts)
			if err != nil {
				log.Debugf("vector %s failed: %s", v.Name, err)
			}
			//
			results[i] = Result{v, out, err}
			//
			return nil
		})
	}
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	//
	return results, nil
}

// Write the results of a run, one line per vector, in the form "name: p q r s
// t u v" or "name: error".
func Write(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error
		//
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%s: %s\n", r.Vector.Name, r.Err)
		} else {
			o := &r.Output
			_, err = fmt.Fprintf(w, "%s: %s %s %s %s %s %s %s\n", r.Vector.Name, o.P, o.Q, o.R,
				o.S.Dec(), o.T.Dec(), o.U.Dec(), o.V.Dec())
		}
		//
		if err != nil {
			return err
		}
	}
	//
	return nil
}

// Summary counts the vectors which evaluated successfully, and those which
// failed.
func Summary(results []Result) (passed uint, failed uint) {
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			passed++
		}
	}
	//
	return passed, failed
}
