// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmulti

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/compbench/compbench/benchchart"
	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/benchreport"
	"github.com/compbench/compbench/internal/toolexec"
)

// Tools lists the external programs a run needs.
var Tools = []string{"cmake", "ninja"}

// Preflight checks that tools can be found and that dir can be
// created. It runs before any benchmark work.
func Preflight(dir string, tools ...string) error {
	if err := toolexec.LookPath(tools...); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// SaveOptions selects the outputs written by Save.
type SaveOptions struct {
	Dir string

	// HTML additionally writes an HTML summary.
	HTML bool

	// ChartDPI is the chart resolution. If zero,
	// benchchart.DefaultDPI is used.
	ChartDPI int
}

// Outputs lists the files written by Save. HTML is empty unless
// requested.
type Outputs struct {
	Data    string
	Summary string
	HTML    string
	Chart   string
}

type dataFile struct {
	Metadata   Metadata    `json:"metadata"`
	AllRuns    interface{} `json:"all_runs"`
	Statistics interface{} `json:"statistics"`
}

func (rep *Report) dataFile() *dataFile {
	d := &dataFile{Metadata: rep.Metadata}
	if rep.Sweep != nil {
		runs := make([]SweepRun, len(rep.Runs))
		for i, res := range rep.Runs {
			runs[i] = SweepRun{NumTypes: rep.Metadata.NumTypesValues[i], Results: res}
		}
		d.AllRuns = runs
		d.Statistics = rep.Sweep
	} else {
		d.AllRuns = rep.Runs
		d.Statistics = rep.Stats
	}
	return d
}

func (rep *Report) summary() *benchreport.Multi {
	m := &benchreport.Multi{
		NumRuns:    rep.Metadata.NumRuns,
		BuildTypes: rep.Metadata.BuildTypes,
		Stamp:      rep.Metadata.Timestamp,
	}
	if rep.Sweep != nil {
		m.Sweep = rep.Sweep
		m.NumTypes = rep.Metadata.NumTypesValues
	} else {
		m.Stats = rep.Stats
	}
	return m
}

func (rep *Report) chart() (*benchchart.Chart, string, error) {
	xs := make([]float64, len(rep.Runs))
	if rep.Sweep != nil {
		for i, n := range rep.Metadata.NumTypesValues {
			xs[i] = float64(n)
		}
		c, err := benchchart.Compilation(rep.Runs, xs, rep.Metadata.BuildTypes, "Compilation Time vs NUM_TYPES", "Number of Types")
		return c, "num_types_comparison", err
	}
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	c, err := benchchart.Compilation(rep.Runs, xs, rep.Metadata.BuildTypes, "Compilation Time Across Runs", "Compilation Run Number")
	return c, "compilation_time_comparison", err
}

// Save writes the data file, the text summary, the chart and,
// optionally, the HTML summary to opts.Dir. Every file name embeds the
// report's timestamp.
func (rep *Report) Save(opts SaveOptions) (*Outputs, error) {
	stamp := rep.Metadata.Timestamp
	path := func(prefix, ext string) string {
		return filepath.Join(opts.Dir, benchdata.Filename(prefix, stamp, ext))
	}
	out := &Outputs{
		Data:    path("multi_benchmark_data", "json"),
		Summary: path("multi_benchmark_summary", "txt"),
	}

	if err := benchdata.WriteFile(out.Data, benchdata.JSON, rep.dataFile()); err != nil {
		return nil, err
	}
	log.Infof("Detailed statistics saved to: %s", out.Data)

	sum := rep.summary()
	var b strings.Builder
	if err := sum.WriteSummary(&b); err != nil {
		return nil, err
	}
	if err := benchdata.WriteText(out.Summary, b.String()); err != nil {
		return nil, err
	}
	log.Infof("Summary saved to: %s", out.Summary)

	if opts.HTML {
		out.HTML = path("multi_benchmark_summary", "html")
		b.Reset()
		if err := sum.WriteHTML(&b); err != nil {
			return nil, fmt.Errorf("rendering HTML summary: %w", err)
		}
		if err := benchdata.WriteText(out.HTML, b.String()); err != nil {
			return nil, err
		}
		log.Infof("HTML summary saved to: %s", out.HTML)
	}

	log.Info("Generating graphs")
	c, prefix, err := rep.chart()
	if err != nil {
		return nil, err
	}
	c.DPI = opts.ChartDPI
	out.Chart = path(prefix, "png")
	if err := c.Save(out.Chart); err != nil {
		return nil, err
	}
	log.Infof("Graphs saved to %s", opts.Dir)
	return out, nil
}
