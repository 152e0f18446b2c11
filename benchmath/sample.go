// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes statistics over repeated compilation
// benchmark measurements.
//
// Statistics are always derived after all runs complete; nothing here
// updates incrementally. Analysis results may carry warnings, captured
// as an []error value. These aren't errors that prevent analysis, but
// should be presented to the user along with the results.
package benchmath

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of one metric of one
// target.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. values is
// not modified.
func NewSample(values []float64) *Sample {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return &Sample{sorted}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Stats are the descriptive statistics of a sample.
type Stats struct {
	// Values are the raw measurements in the order they were taken.
	Values []float64 `json:"values"`

	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	// StdDev is the sample standard deviation. It is 0 when there
	// are fewer than two values.
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes Stats over values. An empty input yields all-zero
// Stats.
func Summarize(values []float64) Stats {
	st := Stats{Values: append([]float64{}, values...), N: len(values)}
	if len(values) == 0 {
		return st
	}
	s := NewSample(values).sample()
	st.Mean = s.Mean()
	st.Median = s.Quantile(0.5)
	if len(values) > 1 {
		st.StdDev = s.StdDev()
	}
	st.Min, st.Max = s.Bounds()
	return st
}

// CheckExact returns a warning if values are not all equal. It is used
// for metrics, like binary size, that a deterministic build should
// reproduce exactly.
func CheckExact(values []float64) error {
	if len(values) == 0 {
		return nil
	}
	s := NewSample(values)
	lo, hi := s.Values[0], s.Values[len(s.Values)-1]
	if lo != hi {
		return fmt.Errorf("exact value expected, but values range from %v to %v", lo, hi)
	}
	return nil
}
