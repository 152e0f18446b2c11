// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Multibench repeats the STL vs EASTL compilation benchmark and
// summarizes the runs with statistics and charts.
//
// Usage:
//
//	multibench [flags]
//
// By default the benchmark runs --runs times (5) for each build type
// and reports the mean, median, standard deviation and range of
// compilation time and binary size. With --num-types-mode it instead
// runs once for each NUM_TYPES value from 25 to 150 in steps of 25.
// Trace analysis is always disabled.
//
// The output directory receives multi_benchmark_data_<timestamp>.json,
// multi_benchmark_summary_<timestamp>.txt (and .html with --html) and
// a PNG chart, all sharing one timestamp.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/compbench/compbench/benchmulti"
	"github.com/compbench/compbench/buildsys"
	"github.com/compbench/compbench/internal/config"
	"github.com/compbench/compbench/internal/logging"
	"github.com/compbench/compbench/internal/toolexec"
)

// env holds the process dependencies of the command.
type env struct {
	stdout, stderr io.Writer
	exec           toolexec.Executor
	now            func() time.Time

	// tools are checked for on PATH before any work.
	tools    []string
	chartDPI int
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "multibench",
		Short:         "Multi-run STL vs EASTL benchmark with graph generation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, e)
		},
	}
	config.AddBuildFlags(cmd.Flags())
	config.AddMultiFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, e *env) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logging.Setup(e.stderr, cfg.Verbose)

	buildTypes, err := cfg.BuildTypes()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := benchmulti.Preflight(cfg.OutputDir, e.tools...); err != nil {
		return err
	}

	tree := &buildsys.Tree{Source: cfg.SourceDir, Build: cfg.BuildDir, Exec: e.exec}
	runner := benchmulti.New(benchmulti.TreeBench(tree, cfg.OutputDir), benchmulti.Options{
		Runs:       cfg.Runs,
		BuildTypes: buildTypes,
		NumTypes:   cfg.NumTypes,
		Sweep:      cfg.NumTypesMode,
	})
	runner.Now = e.now

	rep, err := runner.Run(ctx)
	if err != nil {
		log.Error("Multi-run benchmark failed!")
		return err
	}
	out, err := rep.Save(benchmulti.SaveOptions{Dir: cfg.OutputDir, HTML: cfg.HTML, ChartDPI: e.chartDPI})
	if err != nil {
		return err
	}

	fmt.Fprintln(e.stdout, "\nMulti-run benchmark completed successfully!")
	fmt.Fprintf(e.stdout, "Results saved in: %s\n", cfg.OutputDir)
	for _, f := range []string{out.Data, out.Summary, out.HTML, out.Chart} {
		if f != "" {
			fmt.Fprintf(e.stdout, "  %s\n", f)
		}
	}
	return nil
}

func main() {
	e := &env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		exec:   toolexec.OS{},
		now:    time.Now,
		tools:  benchmulti.Tools,
	}
	if err := newRootCmd(e).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "multibench: %v\n", err)
		os.Exit(1)
	}
}
