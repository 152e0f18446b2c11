// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toolexectest provides a scriptable toolexec.Executor for tests.
package toolexectest

import (
	"context"
	"strings"

	"github.com/compbench/compbench/internal/toolexec"
)

// A Handler answers a single command. Returning a nil Output is
// allowed; the Fake substitutes an empty one.
type Handler func(cmd toolexec.Command) (*toolexec.Output, error)

// Fake is a toolexec.Executor that records every command and answers
// them with the first matching handler.
type Fake struct {
	// Commands is every command run, in order.
	Commands []toolexec.Command

	rules []rule
}

type rule struct {
	match func(toolexec.Command) bool
	h     Handler
}

// On registers h for commands whose command line contains substr.
// Rules are consulted in registration order. Commands matching no
// rule succeed with empty output.
func (f *Fake) On(substr string, h Handler) *Fake {
	f.rules = append(f.rules, rule{
		match: func(c toolexec.Command) bool { return strings.Contains(c.String(), substr) },
		h:     h,
	})
	return f
}

// Fail makes commands containing substr exit with code 1 and the given
// stderr.
func (f *Fake) Fail(substr, stderr string) *Fake {
	return f.On(substr, func(c toolexec.Command) (*toolexec.Output, error) {
		return &toolexec.Output{Stderr: stderr}, &toolexec.ExitError{Cmd: c.Name, Code: 1, Stderr: stderr}
	})
}

// Run implements toolexec.Executor.
func (f *Fake) Run(ctx context.Context, c toolexec.Command) (*toolexec.Output, error) {
	f.Commands = append(f.Commands, c)
	for _, r := range f.rules {
		if !r.match(c) {
			continue
		}
		out, err := r.h(c)
		if out == nil {
			out = &toolexec.Output{}
		}
		return out, err
	}
	return &toolexec.Output{}, nil
}

// Ran returns the command lines recorded so far that contain substr.
func (f *Fake) Ran(substr string) []string {
	var lines []string
	for _, c := range f.Commands {
		if s := c.String(); strings.Contains(s, substr) {
			lines = append(lines, s)
		}
	}
	return lines
}
