// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdata defines the measurements produced by a compilation
// benchmark run and their on-disk encodings.
//
// A run produces a Results mapping keyed by build configuration, then
// test program, then library. Results are built up during a run and are
// read-only once the run completes.
package benchdata

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Library names, in the order they are benchmarked.
const (
	STL   = "stl"
	EASTL = "eastl"
)

// Libraries lists every library under test.
var Libraries = []string{STL, EASTL}

// Tests lists the benchmark test programs. Each is compiled once per
// library.
var Tests = []string{"compilation_benchmark_test"}

// BuildTypes lists the accepted build configurations.
var BuildTypes = []string{"Debug", "Release", "RelWithDebInfo", "MinSizeRel"}

// DefaultBuildTypes is used when no configuration is requested.
var DefaultBuildTypes = []string{"Debug", "Release"}

// ValidBuildType reports whether name is one of BuildTypes.
func ValidBuildType(name string) bool {
	for _, b := range BuildTypes {
		if b == name {
			return true
		}
	}
	return false
}

// TargetName returns the build target compiling test against lib.
func TargetName(lib, test string) string {
	return lib + "_" + test
}

// ErrCompilationFailed is the error marker recorded for a target whose
// build tool exited non-zero.
const ErrCompilationFailed = "Compilation failed"

// A Measurement is the outcome of compiling one target once.
//
// A failed compilation has nil CompilationTime and BinarySize and a
// non-empty Error.
type Measurement struct {
	CompilationTime *float64 `json:"compilation_time" yaml:"compilation_time"`
	BinarySize      *int64   `json:"binary_size" yaml:"binary_size"`
	BinarySizeKB    *float64 `json:"binary_size_kb,omitempty" yaml:"binary_size_kb,omitempty"`

	// AnalysisFile is the base name of the trace analyzer report,
	// if one was produced. Successful measurements encode an empty
	// AnalysisFile as null.
	AnalysisFile string `json:"clang_analysis_file,omitempty" yaml:"clang_analysis_file,omitempty"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewMeasurement returns a successful measurement. The compilation time
// is stored in seconds rounded to milliseconds.
func NewMeasurement(elapsed time.Duration, size int64, analysisFile string) *Measurement {
	secs := round(elapsed.Seconds(), 3)
	kb := round(float64(size)/1024, 2)
	return &Measurement{
		CompilationTime: &secs,
		BinarySize:      &size,
		BinarySizeKB:    &kb,
		AnalysisFile:    analysisFile,
	}
}

// Failed returns a measurement for a compilation that did not succeed.
func Failed() *Measurement {
	return &Measurement{Error: ErrCompilationFailed}
}

// succeeded and failed are the encoded shapes of a Measurement.
type succeeded struct {
	CompilationTime *float64 `json:"compilation_time" yaml:"compilation_time"`
	BinarySize      *int64   `json:"binary_size" yaml:"binary_size"`
	BinarySizeKB    *float64 `json:"binary_size_kb" yaml:"binary_size_kb"`
	AnalysisFile    *string  `json:"clang_analysis_file" yaml:"clang_analysis_file"`
}

type failed struct {
	CompilationTime *float64 `json:"compilation_time" yaml:"compilation_time"`
	BinarySize      *int64   `json:"binary_size" yaml:"binary_size"`
	Error           string   `json:"error" yaml:"error"`
}

func (m *Measurement) encoded() any {
	if m.Error != "" || !m.OK() {
		msg := m.Error
		if msg == "" {
			msg = ErrCompilationFailed
		}
		return failed{m.CompilationTime, m.BinarySize, msg}
	}
	e := succeeded{CompilationTime: m.CompilationTime, BinarySize: m.BinarySize, BinarySizeKB: m.BinarySizeKB}
	if m.AnalysisFile != "" {
		file := m.AnalysisFile
		e.AnalysisFile = &file
	}
	return e
}

// MarshalJSON implements json.Marshaler.
func (m *Measurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.encoded())
}

// MarshalYAML implements yaml.Marshaler.
func (m *Measurement) MarshalYAML() (any, error) {
	return m.encoded(), nil
}

// OK reports whether m holds a usable time and size.
func (m *Measurement) OK() bool {
	return m != nil && m.CompilationTime != nil && m.BinarySize != nil
}

// Seconds returns the compilation time, or 0 if m failed.
func (m *Measurement) Seconds() float64 {
	if !m.OK() {
		return 0
	}
	return *m.CompilationTime
}

// Bytes returns the binary size, or 0 if m failed.
func (m *Measurement) Bytes() int64 {
	if !m.OK() {
		return 0
	}
	return *m.BinarySize
}

func round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}

// Results maps build configuration -> test -> library -> Measurement.
type Results map[string]map[string]map[string]*Measurement

// Set records m for the given key, creating intermediate maps.
func (r Results) Set(config, test, lib string, m *Measurement) {
	tests, ok := r[config]
	if !ok {
		tests = make(map[string]map[string]*Measurement)
		r[config] = tests
	}
	libs, ok := tests[test]
	if !ok {
		libs = make(map[string]*Measurement)
		tests[test] = libs
	}
	libs[lib] = m
}

// Get returns the measurement for the given key, or nil.
func (r Results) Get(config, test, lib string) *Measurement {
	return r[config][test][lib]
}

// StampLayout is the time layout of the token embedded in output file
// names.
const StampLayout = "20060102_150405"

// Stamp formats t as an output file name token.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// Filename returns "<prefix>_<stamp>.<ext>".
func Filename(prefix, stamp, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, stamp, ext)
}
