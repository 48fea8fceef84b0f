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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats captures the resources in use at a given point in time, so that
// the cost of some subsequent work can be reported.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Bytes allocated so far
	startAlloc uint64
	// Heap objects allocated so far
	startMallocs uint64
}

// NewPerfStats takes a snapshot of the current time and allocation counters.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.Mallocs}
}

// Elapsed returns the time since the snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log reports (at debug level) the time taken and memory allocated since the
// snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := float64(m.TotalAlloc-p.startAlloc) / 1024 / 1024
	objects := m.Mallocs - p.startMallocs
	//
	log.Debugf("%s took %s using %0.2f Mb (%d allocations)", prefix, p.Elapsed(), alloc, objects)
}
