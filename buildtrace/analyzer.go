// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buildtrace runs ClangBuildAnalyzer over the -ftime-trace
// output of a single build target.
//
// Analysis is best effort: a missing analyzer, missing trace files, a
// failing or slow analyzer all yield "no analysis" rather than an
// error, so they never disturb the timing and size measurements.
package buildtrace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/buildsys"
	"github.com/compbench/compbench/internal/toolexec"
)

// Timeouts for the analyzer's sub-operations.
const (
	StartTimeout   = 30 * time.Second
	ProcessTimeout = 30 * time.Second
	AnalyzeTimeout = 60 * time.Second
)

// An Analyzer wraps the ClangBuildAnalyzer executable of a build tree.
type Analyzer struct {
	Tree       *buildsys.Tree
	ResultsDir string

	// Now returns the current time, for report file names.
	// If nil, time.Now is used.
	Now func() time.Time
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Available reports whether the analyzer executable exists.
func (a *Analyzer) Available() bool {
	_, err := os.Stat(a.Tree.AnalyzerPath())
	return err == nil
}

func (a *Analyzer) run(ctx context.Context, timeout time.Duration, args ...string) (*toolexec.Output, error) {
	return a.Tree.Exec.Run(ctx, toolexec.Command{
		Name:    a.Tree.AnalyzerPath(),
		Args:    args,
		Timeout: timeout,
	})
}

// Start begins an analyzer session over the build tree. It reports
// whether the session started.
func (a *Analyzer) Start(ctx context.Context) bool {
	if !a.Available() {
		log.WithField("path", a.Tree.AnalyzerPath()).Warn("ClangBuildAnalyzer not found")
		return false
	}
	log.Info("Starting Clang Build Analyzer session")
	out, err := a.run(ctx, StartTimeout, "--start", a.Tree.Build)
	if err != nil {
		logFailure("start", out, err)
		return false
	}
	log.Debug("Clang Build Analyzer session started")
	return true
}

// Analyze processes target's trace files and writes a textual report
// into the results directory. It returns the report's base name, or ""
// if no analysis is available.
func (a *Analyzer) Analyze(ctx context.Context, target, buildType string) string {
	l := log.WithField("target", target)
	traces, err := a.Tree.TraceFiles(target)
	if err != nil {
		l.WithError(err).Warn("Listing trace files failed")
		return ""
	}
	if len(traces) == 0 {
		l.Warn("No trace files found")
		return ""
	}
	if !a.Available() {
		l.WithField("path", a.Tree.AnalyzerPath()).Warn("ClangBuildAnalyzer not found")
		return ""
	}
	if err := os.MkdirAll(a.ResultsDir, 0777); err != nil {
		l.WithError(err).Warn("Creating results directory failed")
		return ""
	}

	stamp := benchdata.Stamp(a.now())
	base := fmt.Sprintf("%s_%s", target, buildType)
	traceBin := filepath.Join(a.ResultsDir, benchdata.Filename("clang_trace_"+base, stamp, "bin"))
	report := filepath.Join(a.ResultsDir, benchdata.Filename("clang_analysis_"+base, stamp, "txt"))

	l.Infof("Processing %d trace files", len(traces))
	out, err := a.run(ctx, ProcessTimeout, "--all", a.Tree.ObjectDir(target), traceBin)
	if err != nil {
		logFailure("process trace files", out, err)
		return ""
	}

	l.Info("Analyzing trace")
	out, err = a.run(ctx, AnalyzeTimeout, "--analyze", traceBin)
	if err != nil {
		logFailure("analyze", out, err)
		return ""
	}

	if err := os.WriteFile(report, []byte(FormatReport(target, buildType, out)), 0666); err != nil {
		l.WithError(err).Warn("Writing analysis report failed")
		return ""
	}
	name := filepath.Base(report)
	l.WithField("report", name).Info("Clang analysis saved")
	return name
}

// FormatReport renders the analyzer output as a report file.
func FormatReport(target, buildType string, out *toolexec.Output) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Clang Build Analysis for %s (%s)\n", target, buildType)
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")
	b.WriteString(out.Stdout)
	if out.Stderr != "" {
		b.WriteString("\n\nStderr:\n")
		b.WriteString(out.Stderr)
	}
	return b.String()
}

func logFailure(op string, out *toolexec.Output, err error) {
	e := log.WithError(err)
	if errors.Is(err, toolexec.ErrTimeout) {
		e.Warnf("Clang Build Analyzer %s timed out", op)
		return
	}
	if out != nil && out.Stderr != "" {
		e = e.WithField("stderr", strings.TrimSpace(out.Stderr))
	}
	e.Warnf("Clang Build Analyzer %s failed", op)
}
