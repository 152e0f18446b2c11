// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmulti repeats single benchmark runs and reduces them to
// statistics, charts and summaries.
//
// A multi-run either repeats the same configuration a fixed number of
// times or sweeps the workload size, running once per size. Trace
// analysis is always disabled. A failed run aborts the whole
// multi-run.
package benchmulti

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/benchmath"
	"github.com/compbench/compbench/benchrun"
	"github.com/compbench/compbench/buildsys"
)

// Modes recorded in the metadata.
const (
	ModeRepeat   = "multi_run"
	ModeNumTypes = "num_types"
)

// DefaultRuns is the default repeat count.
const DefaultRuns = 5

// DefaultSweep lists the workload sizes of a sweep.
var DefaultSweep = []int{25, 50, 75, 100, 125, 150}

// A BenchFunc performs one single benchmark run.
type BenchFunc func(ctx context.Context, opts benchrun.Options) (benchdata.Results, error)

// TreeBench returns a BenchFunc that runs a fresh benchrun.Runner over
// tree for every run.
func TreeBench(tree *buildsys.Tree, resultsDir string) BenchFunc {
	return func(ctx context.Context, opts benchrun.Options) (benchdata.Results, error) {
		return benchrun.New(tree, resultsDir, opts).Run(ctx)
	}
}

// Options configures a multi-run.
type Options struct {
	// Runs is the repeat count. If zero, DefaultRuns is used.
	// Ignored when sweeping.
	Runs int

	// BuildTypes defaults to benchdata.DefaultBuildTypes.
	BuildTypes []string

	// NumTypes is the workload size of every repeated run. If zero,
	// benchrun.DefaultNumTypes is used.
	NumTypes int

	// Sweep switches to workload-size sweep mode.
	Sweep bool

	// SweepValues are the swept sizes. If empty, DefaultSweep is used.
	SweepValues []int
}

// A Runner performs a multi-run.
type Runner struct {
	Opts  Options
	Bench BenchFunc

	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
}

// New returns a Runner with defaults filled in.
func New(bench BenchFunc, opts Options) *Runner {
	if opts.Runs == 0 {
		opts.Runs = DefaultRuns
	}
	if len(opts.BuildTypes) == 0 {
		opts.BuildTypes = benchdata.DefaultBuildTypes
	}
	if opts.NumTypes == 0 {
		opts.NumTypes = benchrun.DefaultNumTypes
	}
	if len(opts.SweepValues) == 0 {
		opts.SweepValues = DefaultSweep
	}
	return &Runner{Opts: opts, Bench: bench}
}

// Metadata describes a multi-run.
type Metadata struct {
	NumRuns    int      `json:"num_runs"`
	BuildTypes []string `json:"build_types"`
	// Timestamp is the file name token shared by every output.
	Timestamp      string `json:"timestamp"`
	Mode           string `json:"mode"`
	NumTypesValues []int  `json:"num_types_values"`
	RunID          string `json:"run_id"`
}

// A SweepRun is the result of one run of a sweep.
type SweepRun struct {
	NumTypes int               `json:"num_types"`
	Results  benchdata.Results `json:"results"`
}

// A Report holds every run of a multi-run and the statistics derived
// from them.
type Report struct {
	Metadata Metadata

	// Runs are the per-run results in execution order.
	Runs []benchdata.Results

	// Stats is set in repeat mode.
	Stats benchmath.Aggregate

	// Sweep is set in sweep mode, keyed by workload size.
	Sweep map[int]benchmath.Aggregate
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run performs every run and aggregates the results.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	opts := r.Opts
	rep := &Report{Metadata: Metadata{
		NumRuns:    opts.Runs,
		BuildTypes: opts.BuildTypes,
		Timestamp:  benchdata.Stamp(r.now()),
		Mode:       ModeRepeat,
		RunID:      uuid.NewString(),
	}}

	if opts.Sweep {
		rep.Metadata.Mode = ModeNumTypes
		rep.Metadata.NumRuns = len(opts.SweepValues)
		rep.Metadata.NumTypesValues = opts.SweepValues
		log.Infof("Starting NUM_TYPES benchmark mode: build types %v, NUM_TYPES values %v", opts.BuildTypes, opts.SweepValues)
		for _, n := range opts.SweepValues {
			log.Infof("NUM_TYPES = %d", n)
			res, err := r.Bench(ctx, benchrun.Options{BuildTypes: opts.BuildTypes, NumTypes: n})
			if err != nil {
				return nil, fmt.Errorf("NUM_TYPES=%d: %w", n, err)
			}
			log.Infof("NUM_TYPES=%d completed successfully", n)
			rep.Runs = append(rep.Runs, res)
		}
		log.Info("All NUM_TYPES tests completed")
	} else {
		rep.Metadata.NumTypesValues = []int{opts.NumTypes}
		log.Infof("Starting multi-run benchmark with %d runs: build types %v", opts.Runs, opts.BuildTypes)
		for i := 1; i <= opts.Runs; i++ {
			log.Infof("RUN %d/%d", i, opts.Runs)
			res, err := r.Bench(ctx, benchrun.Options{BuildTypes: opts.BuildTypes, NumTypes: opts.NumTypes})
			if err != nil {
				return nil, fmt.Errorf("run %d: %w", i, err)
			}
			log.Infof("Run %d completed successfully", i)
			rep.Runs = append(rep.Runs, res)
		}
		log.Infof("All %d runs completed", opts.Runs)
	}

	rep.aggregate(opts.BuildTypes)
	return rep, nil
}

func (rep *Report) aggregate(configs []string) {
	log.Info("Calculating statistics")
	if rep.Metadata.Mode == ModeNumTypes {
		rep.Sweep = make(map[int]benchmath.Aggregate)
		for i, n := range rep.Metadata.NumTypesValues {
			rep.Sweep[n] = benchmath.Collect(rep.Runs[i:i+1], configs)
		}
		return
	}
	rep.Stats = benchmath.Collect(rep.Runs, configs)
}
