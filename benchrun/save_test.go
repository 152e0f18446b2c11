// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/benchreport"
	"github.com/compbench/compbench/internal/toolexec/toolexectest"
)

func sampleResults() benchdata.Results {
	r := make(benchdata.Results)
	r.Set("Debug", test, benchdata.STL, benchdata.NewMeasurement(1500*time.Millisecond, 4096, ""))
	r.Set("Debug", test, benchdata.EASTL, benchdata.Failed())
	return r
}

func TestSaveJSON(t *testing.T) {
	r := newRunner(t, &toolexectest.Fake{}, Options{BuildTypes: []string{"Debug"}})
	saved, err := r.Save(sampleResults(), benchdata.JSON, "20260102_030405")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(r.ResultsDir, "benchmark_results_20260102_030405.json"), saved.Results)
	assert.Equal(t, filepath.Join(r.ResultsDir, "benchmark_summary_20260102_030405.txt"), saved.Summary)

	data, err := os.ReadFile(saved.Results)
	require.NoError(t, err)
	var got map[string]map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1.5, got["Debug"][test]["stl"]["compilation_time"])
	assert.Contains(t, got["Debug"][test]["stl"], "clang_analysis_file")
	assert.Nil(t, got["Debug"][test]["stl"]["clang_analysis_file"])
	assert.Nil(t, got["Debug"][test]["eastl"]["compilation_time"])
	assert.NotContains(t, got["Debug"][test]["eastl"], "clang_analysis_file")
	assert.Equal(t, "Compilation failed", got["Debug"][test]["eastl"]["error"])

	summary, err := os.ReadFile(saved.Summary)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(summary), "STL vs EASTL Compilation Benchmark Results\n"))
	assert.Contains(t, string(summary), "  EASTL: failed\n")
}

func TestSaveTable(t *testing.T) {
	r := newRunner(t, &toolexectest.Fake{}, Options{BuildTypes: []string{"Debug"}})
	saved, err := r.Save(sampleResults(), benchdata.Table, "20260102_030405")
	require.NoError(t, err)

	assert.Empty(t, saved.Results)
	assert.FileExists(t, saved.Summary)
	entries, err := os.ReadDir(r.ResultsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveYAML(t *testing.T) {
	r := newRunner(t, &toolexectest.Fake{}, Options{BuildTypes: []string{"Debug"}})
	saved, err := r.Save(sampleResults(), benchdata.YAML, "20260102_030405")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(saved.Results, "benchmark_results_20260102_030405.yaml"))
	data, err := os.ReadFile(saved.Results)
	require.NoError(t, err)
	assert.Contains(t, string(data), "compilation_time: 1.5")
}

func TestPrint(t *testing.T) {
	r := newRunner(t, &toolexectest.Fake{}, Options{BuildTypes: []string{"Debug"}})
	var b strings.Builder
	require.NoError(t, r.Print(&b, sampleResults(), benchreport.Plain))
	assert.Contains(t, b.String(), "COMPILATION BENCHMARK RESULTS")
	assert.Contains(t, b.String(), "  STL:   1.500s\n")
}
