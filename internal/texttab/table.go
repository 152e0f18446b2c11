// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-column text tables for benchmark
// summaries.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables with a header row, a rule
// under the header and any number of body rows.
//
// Many of its methods return the Table so callers can easily chain
// them to build up a table at once.
type Table struct {
	header []string
	rows   [][]string
	align  []Align
}

// Align is the horizontal alignment of a column.
type Align int

const (
	Left Align = iota
	Right
)

func (a Align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	default:
		return s + strings.Repeat(" ", n)
	case Right:
		return strings.Repeat(" ", n) + s
	}
}

// New returns a table with the given column headers.
func New(header ...string) *Table {
	return &Table{header: header}
}

// Align sets the alignment of column col. Columns are numbered
// starting at 0 and default to Left.
func (t *Table) Align(col int, a Align) *Table {
	for len(t.align) < col+1 {
		t.align = append(t.align, Left)
	}
	t.align[col] = a
	return t
}

// Row appends a body row. Rows may have fewer cells than the header;
// missing cells are blank.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

func (t *Table) alignment(col int) Align {
	if col < len(t.align) {
		return t.align[col]
	}
	return Left
}

func (t *Table) widths() []int {
	cols := len(t.header)
	for _, r := range t.rows {
		cols = max(cols, len(r))
	}
	ws := make([]int, cols)
	measure := func(cells []string) {
		for i, c := range cells {
			ws[i] = max(ws[i], utf8.RuneCountInString(c))
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}
	return ws
}

// Format lays out table t and writes it to w. Columns are separated by
// two spaces and trailing spaces are trimmed from every line.
func (t *Table) Format(w io.Writer) error {
	ws := t.widths()
	if len(ws) == 0 {
		return nil
	}
	line := func(cells []string, fill func(col int) string) error {
		var b strings.Builder
		for col, width := range ws {
			if col > 0 {
				b.WriteString("  ")
			}
			var s string
			if fill != nil {
				s = fill(col)
			} else if col < len(cells) {
				s = cells[col]
			}
			b.WriteString(t.alignment(col).pad(s, width))
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
		return err
	}

	if len(t.header) > 0 {
		if err := line(t.header, nil); err != nil {
			return err
		}
		rule := func(col int) string { return strings.Repeat("-", ws[col]) }
		if err := line(nil, rule); err != nil {
			return err
		}
	}
	for _, r := range t.rows {
		if err := line(r, nil); err != nil {
			return err
		}
	}
	return nil
}
