// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// DefaultAlpha is the significance level used by Compare.
const DefaultAlpha = 0.05

// A Comparison is the result of testing whether two samples come from
// the same distribution.
type Comparison struct {
	// P is the p-value of the null hypothesis that the samples
	// come from the same distribution.
	P float64 `json:"p"`

	// N1 and N2 are the sizes of the two samples.
	N1 int `json:"n1"`
	N2 int `json:"n2"`

	// Alpha is the threshold below which the null hypothesis is
	// rejected.
	Alpha float64 `json:"alpha"`

	// Warnings explain why a test could not be performed.
	Warnings []error `json:"-"`
}

// Compare tests whether x1 and x2 differ in location using the
// Mann-Whitney U-test. If the test cannot be performed (for example,
// all values are equal or a sample is empty), the comparison reports
// no significant difference along with a warning.
func Compare(x1, x2 []float64, alpha float64) Comparison {
	c := Comparison{P: 1, N1: len(x1), N2: len(x2), Alpha: alpha}
	u, err := stats.MannWhitneyUTest(x1, x2, stats.LocationDiffers)
	if err != nil {
		c.Warnings = []error{err}
		return c
	}
	c.P = u.P
	return c
}

// Significant reports whether the comparison rejects the null
// hypothesis.
func (c Comparison) Significant() bool {
	return c.P < c.Alpha
}

// String summarizes the comparison. The general form of this string
// is "p=0.PPP n=N1+N2" but can be shortened.
func (c Comparison) String() string {
	s := fmt.Sprintf("p=%0.3f ", c.P)
	if c.N1 == c.N2 {
		return s + fmt.Sprintf("n=%d", c.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", c.N1, c.N2)
}

// FormatDelta formats the difference between the centers old and new
// of the two compared samples. If the difference is not significant,
// it returns "~".
func (c Comparison) FormatDelta(old, new float64) string {
	if !c.Significant() {
		return "~"
	}
	if old == new {
		return "0.00%"
	}
	if old == 0 {
		return "?"
	}
	pct := ((new / old) - 1.0) * 100.0
	return fmt.Sprintf("%+.2f%%", pct)
}
