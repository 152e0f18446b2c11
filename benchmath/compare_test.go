// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "testing"

func TestCompare(t *testing.T) {
	fast := []float64{1.01, 1.02, 1.00, 1.03, 1.01, 1.02}
	slow := []float64{2.10, 2.05, 2.12, 2.08, 2.11, 2.07}

	c := Compare(fast, slow, DefaultAlpha)
	if !c.Significant() {
		t.Errorf("disjoint samples: p=%v, want significant", c.P)
	}
	if c.N1 != 6 || c.N2 != 6 || len(c.Warnings) != 0 {
		t.Errorf("got %+v", c)
	}

	c = Compare([]float64{1, 1, 1}, []float64{1, 1, 1}, DefaultAlpha)
	if c.Significant() {
		t.Errorf("identical samples reported significant")
	}
	if c.P != 1 || len(c.Warnings) == 0 {
		t.Errorf("identical samples: got P=%v warnings=%v", c.P, c.Warnings)
	}

	c = Compare(nil, slow, DefaultAlpha)
	if c.Significant() || len(c.Warnings) == 0 {
		t.Errorf("empty sample: got %+v", c)
	}
}

func TestComparisonFormat(t *testing.T) {
	check := func(p float64, n1, n2 int, want string) {
		t.Helper()
		got := Comparison{P: p, N1: n1, N2: n2}.String()
		if got != want {
			t.Errorf("for %v,%v,%v, got %s, want %s", p, n1, n2, got, want)
		}
	}
	check(0.5, 1, 2, "p=0.500 n=1+2")
	check(0.5, 2, 2, "p=0.500 n=2")
	check(0.002, 5, 5, "p=0.002 n=5")

	checkD := func(p, old, new, alpha float64, want string) {
		t.Helper()
		got := Comparison{P: p, Alpha: alpha}.FormatDelta(old, new)
		if got != want {
			t.Errorf("for p=%v %v=>%v @%v, got %s, want %s", p, old, new, alpha, got, want)
		}
	}
	checkD(0.01, 1, 1, 0.05, "0.00%")
	checkD(0.01, 1, 2, 0.05, "+100.00%")
	checkD(0.01, 2, 1, 0.05, "-50.00%")
	checkD(0.01, 0, 1, 0.05, "?")
	checkD(0.5, 1, 2, 0.05, "~")
	checkD(0.05, 1, 2, 0.05, "~")
}
