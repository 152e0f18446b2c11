// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"io"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/benchreport"
)

// Saved lists the files written by Save. Results is empty for the
// table format.
type Saved struct {
	Results string
	Summary string
}

func (r *Runner) report(results benchdata.Results) *benchreport.Single {
	return &benchreport.Single{Results: results, BuildTypes: r.Opts.BuildTypes, Tests: r.Opts.Tests}
}

// Print writes the console report of results to w.
func (r *Runner) Print(w io.Writer, results benchdata.Results, style benchreport.Style) error {
	return r.report(results).Print(w, style)
}

// Save writes results to the results directory in format f, followed
// by a plain text summary. Both file names embed stamp.
func (r *Runner) Save(results benchdata.Results, f benchdata.Format, stamp string) (*Saved, error) {
	saved := &Saved{}
	if ext := f.Ext(); ext != "" {
		saved.Results = filepath.Join(r.ResultsDir, benchdata.Filename("benchmark_results", stamp, ext))
		if err := benchdata.WriteFile(saved.Results, f, results); err != nil {
			return nil, err
		}
		log.Infof("Results saved to: %s", saved.Results)
	}

	var b strings.Builder
	if err := r.report(results).WriteSummary(&b); err != nil {
		return nil, err
	}
	saved.Summary = filepath.Join(r.ResultsDir, benchdata.Filename("benchmark_summary", stamp, "txt"))
	if err := benchdata.WriteText(saved.Summary, b.String()); err != nil {
		return nil, err
	}
	log.Infof("Summary saved to: %s", saved.Summary)
	return saved, nil
}
