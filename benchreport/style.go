// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// A Style decorates report headings.
type Style struct {
	Title   func(string) string
	Heading func(string) string
}

// Plain leaves headings undecorated. Files are always written plain.
var Plain = Style{
	Title:   func(s string) string { return s },
	Heading: func(s string) string { return s },
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// Terminal renders headings with ANSI styling.
var Terminal = Style{
	Title:   func(s string) string { return titleStyle.Render(s) },
	Heading: func(s string) string { return headingStyle.Render(s) },
}

// StyleFor returns Terminal if f is a terminal and Plain otherwise.
func StyleFor(f *os.File) Style {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return Terminal
	}
	return Plain
}
