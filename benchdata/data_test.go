// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewMeasurement(t *testing.T) {
	m := NewMeasurement(1234567*time.Microsecond, 2048+512, "report.txt")
	if !m.OK() {
		t.Fatalf("measurement not OK: %+v", m)
	}
	if got, want := m.Seconds(), 1.235; got != want {
		t.Errorf("Seconds() = %v, want %v", got, want)
	}
	if got, want := m.Bytes(), int64(2560); got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
	if got, want := *m.BinarySizeKB, 2.5; got != want {
		t.Errorf("BinarySizeKB = %v, want %v", got, want)
	}
	if m.AnalysisFile != "report.txt" {
		t.Errorf("AnalysisFile = %q", m.AnalysisFile)
	}
}

func TestFailedEncoding(t *testing.T) {
	m := Failed()
	if m.OK() {
		t.Fatal("failed measurement reports OK")
	}
	if m.Seconds() != 0 || m.Bytes() != 0 {
		t.Errorf("failed measurement has values %v, %v", m.Seconds(), m.Bytes())
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"compilation_time":null,"binary_size":null,"error":"Compilation failed"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var nilM *Measurement
	if nilM.OK() {
		t.Error("nil measurement reports OK")
	}
}

func TestSuccessEncoding(t *testing.T) {
	check := func(m *Measurement, want string) {
		t.Helper()
		data, err := json.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}
	}
	check(NewMeasurement(1500*time.Millisecond, 2048, ""),
		`{"compilation_time":1.5,"binary_size":2048,"binary_size_kb":2,"clang_analysis_file":null}`)
	check(NewMeasurement(1500*time.Millisecond, 2048, "report.txt"),
		`{"compilation_time":1.5,"binary_size":2048,"binary_size_kb":2,"clang_analysis_file":"report.txt"}`)
}

func TestResults(t *testing.T) {
	r := make(Results)
	ok := NewMeasurement(time.Second, 10, "")
	r.Set("Debug", "t", STL, ok)
	r.Set("Debug", "t", EASTL, Failed())
	r.Set("Release", "t", STL, ok)

	if r.Get("Debug", "t", STL) != ok {
		t.Error("Get(Debug, t, stl) lost the measurement")
	}
	if r.Get("Debug", "t", EASTL).OK() {
		t.Error("Get(Debug, t, eastl) should be the failed measurement")
	}
	if r.Get("Release", "t", EASTL) != nil {
		t.Error("missing key should give nil")
	}
	if r.Get("MinSizeRel", "x", STL) != nil {
		t.Error("missing config should give nil")
	}
	if len(r) != 2 || len(r["Debug"]["t"]) != 2 {
		t.Errorf("unexpected shape %v", r)
	}
}

func TestTargetName(t *testing.T) {
	if got := TargetName(EASTL, Tests[0]); got != "eastl_compilation_benchmark_test" {
		t.Errorf("TargetName = %q", got)
	}
	for _, b := range BuildTypes {
		if !ValidBuildType(b) {
			t.Errorf("%s should be valid", b)
		}
	}
	if ValidBuildType("debug") {
		t.Error("build types are case sensitive")
	}
}

func TestStamp(t *testing.T) {
	tm := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	s := Stamp(tm)
	if s != "20240309_070501" {
		t.Errorf("Stamp = %q", s)
	}
	if got := Filename("benchmark_results", s, "json"); got != "benchmark_results_20240309_070501.json" {
		t.Errorf("Filename = %q", got)
	}
}

func TestFormats(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Format
		ext  string
	}{
		{"json", JSON, "json"},
		{"YAML", YAML, "yaml"},
		{"table", Table, ""},
	} {
		f, err := ParseFormat(test.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", test.in, err)
			continue
		}
		if f != test.want || f.Ext() != test.ext {
			t.Errorf("ParseFormat(%q) = %q (ext %q), want %q (ext %q)", test.in, f, f.Ext(), test.want, test.ext)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(csv) should fail")
	}
	if _, err := Encode(Table, nil); err == nil {
		t.Error("Encode(Table) should fail")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := make(Results)
	r.Set("Debug", "t", STL, NewMeasurement(1500*time.Millisecond, 4096, ""))

	jsonPath := filepath.Join(dir, "sub", "r.json")
	if err := WriteFile(jsonPath, JSON, r); err != nil {
		t.Fatal(err)
	}
	var back Results
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if got := back.Get("Debug", "t", STL).Seconds(); got != 1.5 {
		t.Errorf("read back %v seconds, want 1.5", got)
	}

	yamlPath := filepath.Join(dir, "r.yaml")
	if err := WriteFile(yamlPath, YAML, r); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"compilation_time: 1.5\n", "clang_analysis_file: null\n"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("yaml output missing %q:\n%s", want, data)
		}
	}
}
