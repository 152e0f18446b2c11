// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrun implements a single compilation benchmark run.
//
// For each build configuration the runner configures a fresh build
// tree, builds the alternative library once outside of timing, and then
// compiles every (library, test) target serially, timing each build and
// recording the resulting binary size. Only test file compilation is
// timed, for both libraries.
package benchrun

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/buildsys"
	"github.com/compbench/compbench/buildtrace"
	"github.com/compbench/compbench/internal/toolexec"
)

// DefaultNumTypes is the default workload size: the number of types the
// benchmark program instantiates.
const DefaultNumTypes = 100

// Options selects what a Runner measures.
type Options struct {
	// BuildTypes are the configurations to benchmark, in order.
	// If empty, benchdata.DefaultBuildTypes is used.
	BuildTypes []string

	// FTimeTrace enables -ftime-trace and per-target trace analysis.
	FTimeTrace bool

	// NumTypes is the workload size passed to the configure step.
	// If zero, DefaultNumTypes is used.
	NumTypes int

	// Tests and Libraries default to benchdata.Tests and
	// benchdata.Libraries.
	Tests     []string
	Libraries []string
}

// A Runner performs one benchmark run. A Runner is not safe for
// concurrent use and should not be reused across runs.
type Runner struct {
	Tree       *buildsys.Tree
	ResultsDir string
	Opts       Options

	// Now returns the current time. Timing is measured as the
	// difference of two calls. If nil, time.Now is used.
	Now func() time.Time

	trace   bool
	results benchdata.Results
}

// New returns a Runner over tree with opts, filling in defaults.
func New(tree *buildsys.Tree, resultsDir string, opts Options) *Runner {
	if len(opts.BuildTypes) == 0 {
		opts.BuildTypes = benchdata.DefaultBuildTypes
	}
	if opts.NumTypes == 0 {
		opts.NumTypes = DefaultNumTypes
	}
	if len(opts.Tests) == 0 {
		opts.Tests = benchdata.Tests
	}
	if len(opts.Libraries) == 0 {
		opts.Libraries = benchdata.Libraries
	}
	return &Runner{Tree: tree, ResultsDir: resultsDir, Opts: opts, trace: opts.FTimeTrace}
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Clean deletes and recreates the build directory.
func (r *Runner) Clean() error {
	log.Info("Cleaning build directory")
	return r.Tree.Reset()
}

// Run benchmarks every configuration and returns the results. A
// non-nil error means the run failed as a whole (a configure step or
// the library pre-build failed) and the results must not be used.
// Failures compiling an individual target are recorded in its
// Measurement instead.
func (r *Runner) Run(ctx context.Context) (benchdata.Results, error) {
	log.Info("Starting STL vs EASTL compilation benchmark")
	r.results = make(benchdata.Results)
	for _, bt := range r.Opts.BuildTypes {
		log.Infof("Benchmarking %s build", strings.ToUpper(bt))
		if err := r.runConfig(ctx, bt); err != nil {
			return nil, err
		}
	}
	return r.results, nil
}

func (r *Runner) runConfig(ctx context.Context, bt string) error {
	if err := r.Tree.Reset(); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"build_type":  bt,
		"generator":   r.Tree.GeneratorName(),
		"ftime_trace": r.trace,
		"num_types":   r.Opts.NumTypes,
	}).Info("Configuring with CMake")
	out, err := r.Tree.Configure(ctx, buildsys.Options{BuildType: bt, FTimeTrace: r.trace, NumTypes: r.Opts.NumTypes})
	if err != nil {
		logToolError("CMake configuration failed", out, err)
		return fmt.Errorf("configuring %s build: %w", bt, err)
	}

	// The standard library ships precompiled with the toolchain, so
	// build the alternative library up front to time only the test
	// programs.
	log.Info("Pre-compiling EASTL library for fair comparison")
	out, err = r.Tree.BuildTarget(ctx, buildsys.LibraryTarget, 0)
	if err != nil {
		logToolError("EASTL pre-compilation failed", out, err)
		return fmt.Errorf("building %s (%s): %w", buildsys.LibraryTarget, bt, err)
	}

	var analyzer *buildtrace.Analyzer
	if r.trace {
		log.Info("Building ClangBuildAnalyzer")
		out, err = r.Tree.BuildTarget(ctx, buildsys.AnalyzerTarget, 0)
		if err != nil {
			logToolError("ClangBuildAnalyzer build failed", out, err)
			log.Warn("Continuing without ClangBuildAnalyzer")
			r.trace = false
		} else {
			analyzer = &buildtrace.Analyzer{Tree: r.Tree, ResultsDir: r.ResultsDir, Now: r.Now}
			analyzer.Start(ctx)
		}
	}

	for _, test := range r.Opts.Tests {
		log.Infof("Benchmarking %s (%s)", test, bt)
		for _, lib := range r.Opts.Libraries {
			target := benchdata.TargetName(lib, test)
			m := r.measure(ctx, target, bt, analyzer)
			r.results.Set(bt, test, lib, m)
		}
	}
	return nil
}

// measure compiles target once and returns its measurement.
func (r *Runner) measure(ctx context.Context, target, bt string, analyzer *buildtrace.Analyzer) *benchdata.Measurement {
	l := log.WithField("target", target)
	l.Info("Compiling")

	if err := r.Tree.CleanTarget(target); err != nil {
		l.WithError(err).Warn("Cleaning target failed")
	}

	start := r.now()
	out, err := r.Tree.BuildTarget(ctx, target, 1)
	elapsed := r.now().Sub(start)
	if err != nil {
		logToolError("Compilation failed for "+target, out, err)
		return benchdata.Failed()
	}

	size, err := r.Tree.BinarySize(target)
	if err != nil {
		l.WithField("path", r.Tree.Binary(target)).Warn("Binary not found")
		size = 0
	}

	var report string
	if analyzer != nil {
		report = analyzer.Analyze(ctx, target, bt)
	}

	m := benchdata.NewMeasurement(elapsed, size, report)
	l.WithFields(log.Fields{
		"seconds": fmt.Sprintf("%.3f", elapsed.Seconds()),
		"bytes":   size,
		"kb":      fmt.Sprintf("%.2f", float64(size)/1024),
	}).Info("Compiled")
	return m
}

func logToolError(msg string, out *toolexec.Output, err error) {
	e := log.WithError(err)
	stderr := ""
	var ee *toolexec.ExitError
	if errors.As(err, &ee) {
		stderr = ee.Stderr
	} else if out != nil {
		stderr = out.Stderr
	}
	if s := strings.TrimSpace(stderr); s != "" {
		e = e.WithField("stderr", s)
	}
	e.Error(msg)
}
