// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a Align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", Left, 6, "abc   ")
	check("abc", Right, 6, "   abc")
	check("abcdef", Right, 3, "abcdef")
	check("☃", Right, 4, "   ☃")
}

func TestTable(t *testing.T) {
	check := func(tab *Table, want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
	}

	// Basic test. Also checks that we don't print unnecessary
	// spaces at the ends of lines.
	check(New("a", "b").Row("long", "x").Row("c", "d"),
		"a     b\n----  -\nlong  x\nc     d\n")

	// Right alignment.
	check(New("NUM_TYPES", "STL Time").Align(0, Right).Align(1, Right).Row("25", "1.234s"),
		"NUM_TYPES  STL Time\n---------  --------\n       25    1.234s\n")

	// Missing cells at the end.
	check(New("a", "b", "c").Row("x"),
		"a  b  c\n-  -  -\nx\n")

	// Rows wider than the header.
	check(New("a").Row("x", "yy"),
		"a\n-  --\nx  yy\n")

	// No header.
	check(New().Row("k", "v"), "k  v\n")

	// Empty table.
	check(New(), "")
}
