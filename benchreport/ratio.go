// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport renders benchmark results as console output,
// text summaries and HTML.
package benchreport

import "fmt"

// A Ratio compares a standard library value to the alternative
// library's value as stl/eastl.
type Ratio struct {
	STL, EASTL float64
}

// Value returns stl/eastl. ok is false unless both values are
// positive.
func (r Ratio) Value() (v float64, ok bool) {
	if r.STL <= 0 || r.EASTL <= 0 {
		return 0, false
	}
	return r.STL / r.EASTL, true
}

// String formats the ratio as "1.23x", or "n/a" if it is undefined.
func (r Ratio) String() string {
	v, ok := r.Value()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", v)
}

// cmp compares the ratio to 1 at the precision it is printed with.
func (r Ratio) cmp() int {
	v, ok := r.Value()
	if !ok {
		return 0
	}
	switch s := fmt.Sprintf("%.2f", v); {
	case s == "1.00":
		return 0
	case v < 1:
		return -1
	}
	return 1
}

// TimeLabel describes a compilation time ratio.
func (r Ratio) TimeLabel() string {
	switch r.cmp() {
	case -1:
		return "STL faster"
	case 1:
		return "EASTL faster"
	}
	return "no difference"
}

// SizeLabel describes a binary size ratio.
func (r Ratio) SizeLabel() string {
	switch r.cmp() {
	case -1:
		return "STL smaller"
	case 1:
		return "EASTL smaller"
	}
	return "no difference"
}
