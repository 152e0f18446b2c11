// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"os"
	"strings"
	"testing"
)

func TestStyleFor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	st := StyleFor(f)
	if got := st.Title("RESULTS"); got != "RESULTS" {
		t.Errorf("file output styled: %q", got)
	}
	if got := Terminal.Heading("BUILD TYPE: DEBUG"); !strings.Contains(got, "BUILD TYPE: DEBUG") {
		t.Errorf("terminal heading lost its text: %q", got)
	}
}
