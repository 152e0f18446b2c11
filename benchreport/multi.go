// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/benchmath"
	"github.com/compbench/compbench/internal/texttab"
)

// A Multi renders the aggregate statistics of a multi-run invocation.
// Exactly one of Stats and Sweep is set.
type Multi struct {
	NumRuns    int
	BuildTypes []string
	Stamp      string

	// Stats holds the statistics of a repeat-mode invocation.
	Stats benchmath.Aggregate

	// Sweep holds the statistics of a workload-size sweep, keyed by
	// workload size. NumTypes lists the swept sizes.
	Sweep    map[int]benchmath.Aggregate
	NumTypes []int
}

// section is one build configuration's part of a report.
type section struct {
	Title  string
	Tables []*table
}

type table struct {
	Caption string
	Header  []string
	Rows    [][]string
	Notes   []string
}

func (m *Multi) meta() [][2]string {
	bt := strings.Join(m.BuildTypes, ", ")
	if m.Sweep != nil {
		sizes := make([]string, len(m.NumTypes))
		for i, n := range m.NumTypes {
			sizes[i] = strconv.Itoa(n)
		}
		return [][2]string{
			{"Mode", "NUM_TYPES comparison"},
			{"NUM_TYPES values", strings.Join(sizes, ", ")},
			{"Build types", bt},
			{"Timestamp", m.Stamp},
		}
	}
	return [][2]string{
		{"Number of runs", strconv.Itoa(m.NumRuns)},
		{"Build types", bt},
		{"Timestamp", m.Stamp},
	}
}

func (m *Multi) sections() []section {
	var out []section
	for _, config := range m.BuildTypes {
		s := section{Title: "BUILD TYPE: " + strings.ToUpper(config)}
		if m.Sweep != nil {
			s.Tables = []*table{m.sweepTable(config)}
		} else {
			for _, test := range m.Stats.Tests(config) {
				s.Tables = append(s.Tables, m.repeatTables(config, test)...)
			}
		}
		out = append(out, s)
	}
	return out
}

var statsHeader = []string{"Library", "N", "Mean", "Median", "Std", "Min", "Max"}

func statsRow(lib string, st benchmath.Stats, scale float64, prec int) []string {
	f := func(x float64) string { return strconv.FormatFloat(x/scale, 'f', prec, 64) }
	if st.N == 0 {
		return []string{strings.ToUpper(lib), "0", "-", "-", "-", "-", "-"}
	}
	return []string{strings.ToUpper(lib), strconv.Itoa(st.N), f(st.Mean), f(st.Median), f(st.StdDev), f(st.Min), f(st.Max)}
}

func (m *Multi) repeatTables(config, test string) []*table {
	stl := m.Stats.Get(config, test, benchdata.STL)
	eastl := m.Stats.Get(config, test, benchdata.EASTL)
	if stl == nil || eastl == nil {
		return nil
	}
	title := testTitle(test)

	timeTab := &table{
		Caption: title + ": Compilation Time (seconds)",
		Header:  statsHeader,
		Rows: [][]string{
			statsRow(benchdata.STL, stl.CompilationTime, 1, 3),
			statsRow(benchdata.EASTL, eastl.CompilationTime, 1, 3),
		},
	}
	tr := Ratio{stl.CompilationTime.Mean, eastl.CompilationTime.Mean}
	if _, ok := tr.Value(); ok {
		timeTab.Notes = append(timeTab.Notes, fmt.Sprintf("Ratio: %s (%s)", tr, tr.TimeLabel()))
		c := benchmath.Compare(stl.CompilationTime.Values, eastl.CompilationTime.Values, benchmath.DefaultAlpha)
		timeTab.Notes = append(timeTab.Notes,
			fmt.Sprintf("EASTL vs STL: %s (%s)", c.FormatDelta(stl.CompilationTime.Mean, eastl.CompilationTime.Mean), c))
		for _, w := range c.Warnings {
			timeTab.Notes = append(timeTab.Notes, "Note: "+w.Error())
		}
	}

	sizeTab := &table{
		Caption: title + ": Binary Size (KB)",
		Header:  statsHeader,
		Rows: [][]string{
			statsRow(benchdata.STL, stl.BinarySize, 1024, 2),
			statsRow(benchdata.EASTL, eastl.BinarySize, 1024, 2),
		},
	}
	sr := Ratio{stl.BinarySize.Mean, eastl.BinarySize.Mean}
	if _, ok := sr.Value(); ok {
		sizeTab.Notes = append(sizeTab.Notes, fmt.Sprintf("Ratio: %s (%s)", sr, sr.SizeLabel()))
	}
	for _, lib := range benchdata.Libraries {
		if err := benchmath.CheckExact(m.Stats.Get(config, test, lib).BinarySize.Values); err != nil {
			sizeTab.Notes = append(sizeTab.Notes, fmt.Sprintf("Warning: %s binary size: %v", strings.ToUpper(lib), err))
		}
	}
	return []*table{timeTab, sizeTab}
}

var sweepHeader = []string{"NUM_TYPES", "STL Time", "EASTL Time", "STL/EASTL Ratio", "STL Size (KB)", "EASTL Size (KB)"}

func (m *Multi) sweepTable(config string) *table {
	t := &table{Header: sweepHeader}
	sizes := append([]int(nil), m.NumTypes...)
	sort.Ints(sizes)
	for _, n := range sizes {
		agg := m.Sweep[n]
		tests := agg.Tests(config)
		if len(tests) == 0 {
			continue
		}
		// The sweep reports the first test program only.
		stl := agg.Get(config, tests[0], benchdata.STL)
		eastl := agg.Get(config, tests[0], benchdata.EASTL)
		if stl == nil || eastl == nil {
			continue
		}
		cell := func(st benchmath.Stats, scale float64) string {
			if st.N == 0 {
				return "failed"
			}
			return fmt.Sprintf("%.2f", st.Mean/scale)
		}
		ratio := "n/a"
		if v, ok := (Ratio{stl.CompilationTime.Mean, eastl.CompilationTime.Mean}).Value(); ok {
			ratio = fmt.Sprintf("%.2f", v)
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(n),
			cell(stl.CompilationTime, 1),
			cell(eastl.CompilationTime, 1),
			ratio,
			cell(stl.BinarySize, 1024),
			cell(eastl.BinarySize, 1024),
		})
	}
	return t
}

// WriteSummary writes the plain text multi-run summary.
func (m *Multi) WriteSummary(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Multi-Run STL vs EASTL Benchmark Results\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	for _, kv := range m.meta() {
		fmt.Fprintf(&b, "%s: %s\n", kv[0], kv[1])
	}
	b.WriteString("\n")

	for _, s := range m.sections() {
		fmt.Fprintf(&b, "%s\n%s\n\n", s.Title, strings.Repeat("=", len(s.Title)))
		for _, t := range s.Tables {
			if t.Caption != "" {
				fmt.Fprintf(&b, "%s\n", t.Caption)
			}
			tab := texttab.New(t.Header...)
			for col := 1; col < len(t.Header); col++ {
				tab.Align(col, texttab.Right)
			}
			if m.Sweep != nil {
				tab.Align(0, texttab.Right)
			}
			for _, row := range t.Rows {
				tab.Row(row...)
			}
			tab.Format(&b)
			for _, n := range t.Notes {
				fmt.Fprintf(&b, "  %s\n", n)
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
