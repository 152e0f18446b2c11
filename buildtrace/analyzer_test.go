// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buildtrace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compbench/compbench/buildsys"
	"github.com/compbench/compbench/internal/toolexec"
	"github.com/compbench/compbench/internal/toolexec/toolexectest"
)

const target = "stl_compilation_benchmark_test"

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0777))
}

func newAnalyzer(t *testing.T, fake *toolexectest.Fake) *Analyzer {
	t.Helper()
	root := t.TempDir()
	tree := &buildsys.Tree{Build: filepath.Join(root, "build"), Exec: fake}
	return &Analyzer{
		Tree:       tree,
		ResultsDir: filepath.Join(root, "results"),
		Now:        func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
}

func TestAnalyze(t *testing.T) {
	fake := (&toolexectest.Fake{}).On("--analyze", func(toolexec.Command) (*toolexec.Output, error) {
		return &toolexec.Output{Stdout: "**** Time summary\n", Stderr: "warning: old trace"}, nil
	})
	a := newAnalyzer(t, fake)
	touch(t, a.Tree.AnalyzerPath())
	touch(t, filepath.Join(a.Tree.ObjectDir(target), "main.cpp.json"))

	name := a.Analyze(context.Background(), target, "Debug")
	require.Equal(t, "clang_analysis_stl_compilation_benchmark_test_Debug_20250102_030405.txt", name)

	data, err := os.ReadFile(filepath.Join(a.ResultsDir, name))
	require.NoError(t, err)
	want := "Clang Build Analysis for " + target + " (Debug)\n" +
		"============================================================\n\n" +
		"**** Time summary\n" +
		"\n\nStderr:\nwarning: old trace"
	assert.Equal(t, want, string(data))

	require.Len(t, fake.Commands, 2)
	assert.Equal(t, []string{"--all", a.Tree.ObjectDir(target), filepath.Join(a.ResultsDir, "clang_trace_stl_compilation_benchmark_test_Debug_20250102_030405.bin")}, fake.Commands[0].Args)
	assert.Equal(t, ProcessTimeout, fake.Commands[0].Timeout)
	assert.Equal(t, AnalyzeTimeout, fake.Commands[1].Timeout)
}

func TestAnalyzeDegrades(t *testing.T) {
	ctx := context.Background()

	t.Run("no traces", func(t *testing.T) {
		fake := &toolexectest.Fake{}
		a := newAnalyzer(t, fake)
		touch(t, a.Tree.AnalyzerPath())
		assert.Empty(t, a.Analyze(ctx, target, "Debug"))
		assert.Empty(t, fake.Commands)
	})

	t.Run("no analyzer", func(t *testing.T) {
		fake := &toolexectest.Fake{}
		a := newAnalyzer(t, fake)
		touch(t, filepath.Join(a.Tree.ObjectDir(target), "main.cpp.json"))
		assert.Empty(t, a.Analyze(ctx, target, "Debug"))
		assert.Empty(t, fake.Commands)
	})

	t.Run("timeout", func(t *testing.T) {
		fake := (&toolexectest.Fake{}).On("--all", func(c toolexec.Command) (*toolexec.Output, error) {
			return nil, fmt.Errorf("%s: %w", c.Name, toolexec.ErrTimeout)
		})
		a := newAnalyzer(t, fake)
		touch(t, a.Tree.AnalyzerPath())
		touch(t, filepath.Join(a.Tree.ObjectDir(target), "main.cpp.json"))
		assert.Empty(t, a.Analyze(ctx, target, "Release"))
		assert.Len(t, fake.Commands, 1)
	})

	t.Run("analyze fails", func(t *testing.T) {
		fake := (&toolexectest.Fake{}).Fail("--analyze", "corrupt trace")
		a := newAnalyzer(t, fake)
		touch(t, a.Tree.AnalyzerPath())
		touch(t, filepath.Join(a.Tree.ObjectDir(target), "main.cpp.json"))
		assert.Empty(t, a.Analyze(ctx, target, "Release"))
		entries, _ := os.ReadDir(a.ResultsDir)
		assert.Empty(t, entries)
	})
}

func TestStart(t *testing.T) {
	fake := &toolexectest.Fake{}
	a := newAnalyzer(t, fake)
	assert.False(t, a.Start(context.Background()), "start without analyzer")

	touch(t, a.Tree.AnalyzerPath())
	assert.True(t, a.Start(context.Background()))
	require.Len(t, fake.Commands, 1)
	assert.Equal(t, []string{"--start", a.Tree.Build}, fake.Commands[0].Args)
	assert.Equal(t, StartTimeout, fake.Commands[0].Timeout)

	fake.Fail("--start", "session exists")
	assert.False(t, a.Start(context.Background()))
}

func TestFormatReportNoStderr(t *testing.T) {
	got := FormatReport("t", "Release", &toolexec.Output{Stdout: "ok\n"})
	assert.Equal(t, "Clang Build Analysis for t (Release)\n"+
		"============================================================\n\nok\n", got)
}
