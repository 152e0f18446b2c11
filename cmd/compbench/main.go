// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Compbench compiles the benchmark test program against the standard
// library and EASTL and compares compilation time and binary size.
//
// Usage:
//
//	compbench [flags]
//
// Each requested build type is configured from scratch in the build
// directory. EASTL itself is built once before timing, so only the
// test program is timed for both libraries. With -ftime-trace enabled
// (the default), each target is also run through ClangBuildAnalyzer
// and its report saved next to the results.
//
// Results are written to the results directory as
// benchmark_results_<timestamp>.json (or .yaml) along with a plain
// text benchmark_summary_<timestamp>.txt.
//
// Settings may also come from a YAML config file (--config, or
// ./compbench.yaml) and COMPBENCH_* environment variables, such as
// COMPBENCH_NUM_TYPES. Flags take precedence.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/benchreport"
	"github.com/compbench/compbench/benchrun"
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
	style          benchreport.Style
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "compbench",
		Short:         "STL vs EASTL compilation benchmark",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, e)
		},
	}
	config.AddBuildFlags(cmd.Flags())
	config.AddSingleFlags(cmd.Flags())
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
	format, err := cfg.Format()
	if err != nil {
		return err
	}
	if cfg.NumTypes <= 0 {
		return fmt.Errorf("--num-types must be positive, got %d", cfg.NumTypes)
	}

	tree := &buildsys.Tree{Source: cfg.SourceDir, Build: cfg.BuildDir, Exec: e.exec}
	runner := benchrun.New(tree, cfg.ResultsDir, benchrun.Options{
		BuildTypes: buildTypes,
		FTimeTrace: !cfg.DisableFTimeTrace,
		NumTypes:   cfg.NumTypes,
	})
	runner.Now = e.now

	if cfg.Clean {
		if err := runner.Clean(); err != nil {
			return err
		}
	}

	results, err := runner.Run(ctx)
	if err != nil {
		log.Error("Compilation benchmark failed!")
		return err
	}

	if err := runner.Print(e.stdout, results, e.style); err != nil {
		return err
	}
	if _, err := runner.Save(results, format, benchdata.Stamp(e.now())); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, "\nCompilation benchmark completed successfully!")
	return nil
}

func main() {
	e := &env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		exec:   toolexec.OS{},
		now:    time.Now,
		style:  benchreport.StyleFor(os.Stdout),
	}
	if err := newRootCmd(e).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "compbench: %v\n", err)
		os.Exit(1)
	}
}
