// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func TestSummarize(t *testing.T) {
	check := func(values []float64, mean, median, std, min, max float64) {
		t.Helper()
		got := Summarize(values)
		if got.N != len(values) {
			t.Errorf("%v: N = %d, want %d", values, got.N, len(values))
		}
		if !near(got.Mean, mean) || !near(got.Median, median) || !near(got.StdDev, std) || got.Min != min || got.Max != max {
			t.Errorf("%v: got mean=%v median=%v std=%v min=%v max=%v, want %v %v %v %v %v",
				values, got.Mean, got.Median, got.StdDev, got.Min, got.Max, mean, median, std, min, max)
		}
	}

	check([]float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, 4.5, math.Sqrt(32.0/7), 2, 9)
	check([]float64{3, 1, 2}, 2, 2, 1, 1, 3)
	check([]float64{1.25, 1.75}, 1.5, 1.5, math.Sqrt(0.125), 1.25, 1.75)
	check([]float64{10, 20, 30, 40}, 25, 25, math.Sqrt(500.0/3), 10, 40)
}

func TestSummarizeMeanIsAverage(t *testing.T) {
	for _, values := range [][]float64{
		{1.234, 1.301, 1.187},
		{12.5, 12.75, 13.0, 12.25, 12.5},
		{786432, 786432, 790528},
	} {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		if got, want := Summarize(values).Mean, sum/float64(len(values)); !near(got, want) {
			t.Errorf("mean of %v = %v, want %v", values, got, want)
		}
	}
}

func TestSummarizeStdDevZero(t *testing.T) {
	// Standard deviation is zero iff all values are identical.
	if got := Summarize([]float64{1.5, 1.5, 1.5, 1.5}).StdDev; got != 0 {
		t.Errorf("identical values: std = %v, want 0", got)
	}
	if got := Summarize([]float64{1.5, 1.5, 1.501}).StdDev; got == 0 {
		t.Errorf("distinct values: std = 0")
	}
}

func TestSummarizeSmall(t *testing.T) {
	one := Summarize([]float64{3.25})
	if one.StdDev != 0 || one.Mean != 3.25 || one.Median != 3.25 || one.Min != 3.25 || one.Max != 3.25 {
		t.Errorf("single sample: got %+v", one)
	}
	if math.IsNaN(one.StdDev) {
		t.Error("single sample std is NaN")
	}

	none := Summarize(nil)
	if none.N != 0 || none.Mean != 0 || none.StdDev != 0 || none.Values == nil {
		t.Errorf("empty sample: got %+v", none)
	}
}

func TestSummarizeKeepsOrder(t *testing.T) {
	in := []float64{3, 1, 2}
	got := Summarize(in)
	if got.Values[0] != 3 || got.Values[1] != 1 || got.Values[2] != 2 {
		t.Errorf("Values reordered: %v", got.Values)
	}
	if in[0] != 3 {
		t.Errorf("input modified: %v", in)
	}
}

func TestCheckExact(t *testing.T) {
	if err := CheckExact([]float64{4096, 4096}); err != nil {
		t.Errorf("equal values: %v", err)
	}
	if err := CheckExact(nil); err != nil {
		t.Errorf("no values: %v", err)
	}
	err := CheckExact([]float64{4096, 4000, 4100})
	if err == nil {
		t.Fatal("unequal values: no warning")
	}
	if want := "exact value expected, but values range from 4000 to 4100"; err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
}
