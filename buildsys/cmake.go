// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buildsys drives the CMake build tree of the benchmark project.
//
// It knows the layout CMake produces for a target (object directory,
// binary, -ftime-trace files) and how to configure and build targets,
// but nothing about timing or results.
package buildsys

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/compbench/compbench/internal/toolexec"
)

// Well-known targets defined by the project's CMakeLists.txt.
const (
	// LibraryTarget is the alternative library's own object code.
	LibraryTarget = "EASTL"
	// AnalyzerTarget builds the trace analyzer fetched by CMake.
	AnalyzerTarget = "ClangBuildAnalyzer"
)

// DefaultGenerator is the CMake generator used when none is set.
const DefaultGenerator = "Ninja"

// A Tree is a CMake source/build directory pair.
type Tree struct {
	Source    string // directory holding CMakeLists.txt
	Build     string // build directory
	Generator string // CMake generator; DefaultGenerator if empty
	CMake     string // cmake executable; "cmake" if empty

	Exec toolexec.Executor
}

// Options are the cache variables passed at configure time.
type Options struct {
	BuildType  string
	FTimeTrace bool
	NumTypes   int
}

func (t *Tree) cmake() string {
	if t.CMake != "" {
		return t.CMake
	}
	return "cmake"
}

// GeneratorName returns the CMake generator t configures with.
func (t *Tree) GeneratorName() string {
	if t.Generator != "" {
		return t.Generator
	}
	return DefaultGenerator
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// Reset deletes the build directory and recreates it empty.
func (t *Tree) Reset() error {
	if err := os.RemoveAll(t.Build); err != nil {
		return fmt.Errorf("removing build directory: %w", err)
	}
	return os.MkdirAll(t.Build, 0777)
}

// ConfigureCommand returns the command that configures t with opts.
func (t *Tree) ConfigureCommand(opts Options) toolexec.Command {
	src := t.Source
	if src == "" {
		src = "."
	}
	args := []string{
		"-S", src, "-B", t.Build,
		"-DCMAKE_BUILD_TYPE=" + opts.BuildType,
		"-DENABLE_FTIME_TRACE=" + onOff(opts.FTimeTrace),
		"-DNUM_TYPES=" + strconv.Itoa(opts.NumTypes),
	}
	args = append(args, "-G", t.GeneratorName())
	return toolexec.Command{Name: t.cmake(), Args: args}
}

// Configure runs the CMake configure step.
func (t *Tree) Configure(ctx context.Context, opts Options) (*toolexec.Output, error) {
	return t.Exec.Run(ctx, t.ConfigureCommand(opts))
}

// BuildCommand returns the command that builds target. If jobs > 0 the
// build is restricted to that many parallel jobs.
func (t *Tree) BuildCommand(target string, jobs int) toolexec.Command {
	args := []string{"--build", t.Build, "--target", target}
	if jobs > 0 {
		args = append(args, "-j"+strconv.Itoa(jobs))
	}
	return toolexec.Command{Name: t.cmake(), Args: args}
}

// BuildTarget builds target.
func (t *Tree) BuildTarget(ctx context.Context, target string, jobs int) (*toolexec.Output, error) {
	return t.Exec.Run(ctx, t.BuildCommand(target, jobs))
}

// ObjectDir returns the directory holding target's object files.
func (t *Tree) ObjectDir(target string) string {
	return filepath.Join(t.Build, "CMakeFiles", target+".dir")
}

// Binary returns the path of target's executable.
func (t *Tree) Binary(target string) string {
	return filepath.Join(t.Build, target)
}

// AnalyzerPath returns where CMake places the fetched trace analyzer.
func (t *Tree) AnalyzerPath() string {
	return filepath.Join(t.Build, "_deps", "clangbuildanalyzer-build", AnalyzerTarget)
}

// TraceFiles returns the -ftime-trace JSON files below target's object
// directory, in lexical order. A missing directory yields no files.
func (t *Tree) TraceFiles(target string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(t.ObjectDir(target), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// CleanTarget removes target's object files, binary, and trace files
// so the next build recompiles it from scratch.
func (t *Tree) CleanTarget(target string) error {
	if err := os.RemoveAll(t.ObjectDir(target)); err != nil {
		return err
	}
	if err := os.Remove(t.Binary(target)); err != nil && !os.IsNotExist(err) {
		return err
	}
	// Trace files live under the object directory, which is
	// already gone. Catch any a generator put elsewhere.
	traces, err := t.TraceFiles(target)
	if err != nil {
		return err
	}
	for _, f := range traces {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// BinarySize returns the size in bytes of target's executable.
func (t *Tree) BinarySize(target string) (int64, error) {
	fi, err := os.Stat(t.Binary(target))
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
