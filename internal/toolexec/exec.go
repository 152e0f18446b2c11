// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toolexec runs external build tools and captures their output.
//
// Every invocation blocks until the child process exits. A Command may
// carry a Timeout; when it expires the child is killed and Run returns
// an error matching ErrTimeout.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrTimeout is returned (wrapped) when a command exceeds its Timeout.
var ErrTimeout = errors.New("timed out")

// A Command describes one external tool invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory. If empty, the caller's
	// working directory is used.
	Dir string

	// Timeout bounds the invocation. Zero means no timeout.
	Timeout time.Duration
}

// String returns the command line, for logging.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// An Output holds the captured streams of a finished command.
type Output struct {
	Stdout, Stderr string
}

// An ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Cmd, e.Code)
}

// An Executor runs commands. Implementations must not return a nil
// Output, even on error, so callers can always inspect stderr.
type Executor interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// OS is an Executor that starts real operating system processes.
type OS struct{}

var execCommandContext = exec.CommandContext

// Run implements Executor.
func (OS) Run(ctx context.Context, c Command) (*Output, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := execCommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return out, nil
	}
	if c.Timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("%s: %w after %v", c.Name, ErrTimeout, c.Timeout)
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return out, &ExitError{Cmd: c.Name, Code: ee.ExitCode(), Stderr: out.Stderr}
	}
	return out, fmt.Errorf("running %s: %w", c.Name, err)
}

// LookPath reports whether every named tool can be found on PATH. It
// returns an error naming the first missing tool.
func LookPath(tools ...string) error {
	for _, t := range tools {
		if _, err := exec.LookPath(t); err != nil {
			return fmt.Errorf("required tool %q not found: %w", t, err)
		}
	}
	return nil
}
