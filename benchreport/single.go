// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/compbench/compbench/benchdata"
)

// A Single renders the results of one benchmark run.
type Single struct {
	Results benchdata.Results

	// BuildTypes and Tests give the order configurations and tests
	// are reported in. Entries missing from Results are skipped.
	BuildTypes []string
	Tests      []string
}

// WriteSummary writes the plain text summary saved next to the results.
func (s *Single) WriteSummary(w io.Writer) error {
	return s.write(w, "STL vs EASTL Compilation Benchmark Results", 50, Plain)
}

// Print writes the console report to w using style for headings.
func (s *Single) Print(w io.Writer, style Style) error {
	return s.write(w, "COMPILATION BENCHMARK RESULTS", 60, style)
}

func (s *Single) write(w io.Writer, title string, rule int, style Style) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", style.Title(title), strings.Repeat("=", rule))

	for _, config := range s.BuildTypes {
		tests, ok := s.Results[config]
		if !ok {
			continue
		}
		heading := "BUILD TYPE: " + strings.ToUpper(config)
		fmt.Fprintf(&b, "%s\n%s\n\n", style.Heading(heading), strings.Repeat("=", len(heading)))

		for _, test := range s.Tests {
			libs, ok := tests[test]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "%s\n%s\n", testTitle(test), strings.Repeat("-", len(test)))
			writeComparison(&b, libs[benchdata.STL], libs[benchdata.EASTL])
			b.WriteString("\n")
		}
	}

	if len(s.BuildTypes) > 1 {
		heading := "BUILD TYPE COMPARISON"
		fmt.Fprintf(&b, "%s\n%s\n\n", style.Heading(heading), strings.Repeat("=", len(heading)))
		for _, test := range s.Tests {
			fmt.Fprintf(&b, "%s\n%s\n", testTitle(test), strings.Repeat("-", len(test)))
			for _, lib := range benchdata.Libraries {
				fmt.Fprintf(&b, "%s:\n", strings.ToUpper(lib))
				for _, config := range s.BuildTypes {
					if m := s.Results.Get(config, test, lib); m != nil {
						fmt.Fprintf(&b, "  %s: %s\n", config, formatTime(m))
					}
				}
				b.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeComparison(b *strings.Builder, stl, eastl *benchdata.Measurement) {
	b.WriteString("Compilation Time:\n")
	fmt.Fprintf(b, "  STL:   %s\n", formatTime(stl))
	fmt.Fprintf(b, "  EASTL: %s\n", formatTime(eastl))
	if stl.OK() && eastl.OK() {
		r := Ratio{stl.Seconds(), eastl.Seconds()}
		if _, ok := r.Value(); ok {
			fmt.Fprintf(b, "  Ratio: %s (%s)\n", r, r.TimeLabel())
		}
	}
	b.WriteString("\n")

	b.WriteString("Binary Size:\n")
	fmt.Fprintf(b, "  STL:   %s\n", formatSize(stl))
	fmt.Fprintf(b, "  EASTL: %s\n", formatSize(eastl))
	if stl.OK() && eastl.OK() {
		r := Ratio{float64(stl.Bytes()), float64(eastl.Bytes())}
		if _, ok := r.Value(); ok {
			fmt.Fprintf(b, "  Ratio: %s (%s)\n", r, r.SizeLabel())
		}
	}
	b.WriteString("\n")
}

func testTitle(test string) string {
	return strings.ToUpper(strings.ReplaceAll(test, "_", " "))
}

func formatTime(m *benchdata.Measurement) string {
	switch {
	case m == nil:
		return "N/A"
	case !m.OK():
		return "failed"
	}
	return fmt.Sprintf("%.3fs", m.Seconds())
}

func formatSize(m *benchdata.Measurement) string {
	switch {
	case m == nil:
		return "N/A"
	case !m.OK():
		return "failed"
	}
	return fmt.Sprintf("%d bytes (%.2f KB)", m.Bytes(), float64(m.Bytes())/1024)
}
