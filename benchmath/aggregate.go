// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"sort"

	"github.com/compbench/compbench/benchdata"
)

// Metrics holds the statistics of both measured metrics of one target.
type Metrics struct {
	CompilationTime Stats `json:"compilation_time"`
	BinarySize      Stats `json:"binary_size"`
}

// Aggregate maps build configuration -> test -> library -> Metrics.
type Aggregate map[string]map[string]map[string]*Metrics

// Get returns the metrics for the given key, or nil.
func (a Aggregate) Get(config, test, lib string) *Metrics {
	return a[config][test][lib]
}

// Tests returns the tests aggregated under config, sorted.
func (a Aggregate) Tests(config string) []string {
	var tests []string
	for t := range a[config] {
		tests = append(tests, t)
	}
	sort.Strings(tests)
	return tests
}

// Collect reduces a sequence of run results to descriptive statistics.
//
// Every configuration in configs gets an entry, as does every library in
// benchdata.Libraries under every test seen in any run. Failed
// measurements contribute no samples.
func Collect(runs []benchdata.Results, configs []string) Aggregate {
	type key struct{ config, test, lib string }
	times := make(map[key][]float64)
	sizes := make(map[key][]float64)

	agg := make(Aggregate)
	for _, config := range configs {
		agg[config] = make(map[string]map[string]*Metrics)
	}
	for _, run := range runs {
		for _, config := range configs {
			for test, libs := range run[config] {
				if agg[config][test] == nil {
					agg[config][test] = make(map[string]*Metrics)
				}
				for lib, m := range libs {
					if !m.OK() {
						continue
					}
					k := key{config, test, lib}
					times[k] = append(times[k], m.Seconds())
					sizes[k] = append(sizes[k], float64(m.Bytes()))
				}
			}
		}
	}

	for config, tests := range agg {
		for test, libs := range tests {
			for _, lib := range benchdata.Libraries {
				k := key{config, test, lib}
				libs[lib] = &Metrics{
					CompilationTime: Summarize(times[k]),
					BinarySize:      Summarize(sizes[k]),
				}
			}
		}
	}
	return agg
}
