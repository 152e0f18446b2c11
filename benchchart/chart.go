// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders compilation time line charts comparing the
// two libraries, one panel per build configuration.
package benchchart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/compbench/compbench/benchdata"
)

// DefaultDPI is the resolution charts are rendered at.
const DefaultDPI = 150

// Panel dimensions.
const (
	panelWidth  = 10 * vg.Inch
	panelHeight = 6 * vg.Inch
)

// A Series is one library's measurements in a panel. Points holds
// every successful measurement. Segments splits Points into runs of
// consecutive x values, and a line is drawn through each segment only.
type Series struct {
	Name     string
	Points   plotter.XYs
	Segments []plotter.XYs
	Color    color.Color
	Shape    draw.GlyphDrawer
}

// A Panel is one chart of a figure.
type Panel struct {
	Title  string
	XLabel string
	YLabel string

	// Ticks are the x values labeled on the X axis. No other x
	// values are labeled.
	Ticks  []float64
	Series []Series
}

// A Chart is a row of panels rendered side by side into one image.
type Chart struct {
	Panels []Panel

	// DPI is the output resolution. If zero, DefaultDPI is used.
	DPI int
}

var libStyle = map[string]struct {
	label string
	color color.Color
	shape draw.GlyphDrawer
}{
	benchdata.STL:   {"STL", color.NRGBA{0x1f, 0x77, 0xb4, 0xff}, draw.CircleGlyph{}},
	benchdata.EASTL: {"EASTL", color.NRGBA{0xff, 0x7f, 0x0e, 0xff}, draw.BoxGlyph{}},
}

// Compilation builds a chart of compilation time against xs, where
// xs[i] is the x value of runs[i]. It draws one panel per
// configuration in configs and one series per library for each test.
// Failed measurements leave a gap in their series.
func Compilation(runs []benchdata.Results, xs []float64, configs []string, title, xlabel string) (*Chart, error) {
	if len(xs) != len(runs) {
		return nil, fmt.Errorf("%d x values for %d runs", len(xs), len(runs))
	}
	c := &Chart{}
	for _, config := range configs {
		p := Panel{
			Title:  fmt.Sprintf("%s - %s", title, config),
			XLabel: xlabel,
			YLabel: "Compilation Time (seconds)",
			Ticks:  xs,
		}
		for _, test := range benchdata.Tests {
			for _, lib := range benchdata.Libraries {
				st := libStyle[lib]
				s := Series{Name: st.label, Color: st.color, Shape: st.shape}
				var seg plotter.XYs
				for i, run := range runs {
					m := run.Get(config, test, lib)
					if !m.OK() {
						if len(seg) > 0 {
							s.Segments = append(s.Segments, seg)
						}
						seg = nil
						continue
					}
					xy := plotter.XY{X: xs[i], Y: m.Seconds()}
					s.Points = append(s.Points, xy)
					seg = append(seg, xy)
				}
				if len(seg) > 0 {
					s.Segments = append(s.Segments, seg)
				}
				if len(benchdata.Tests) > 1 {
					s.Name = fmt.Sprintf("%s %s", st.label, test)
				}
				p.Series = append(p.Series, s)
			}
		}
		c.Panels = append(c.Panels, p)
	}
	return c, nil
}

func (p *Panel) plot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{0xdd}
	grid.Horizontal.Color = color.Gray{0xdd}
	pl.Add(grid)

	var drawn bool
	for _, s := range p.Series {
		if len(s.Points) == 0 {
			continue
		}
		points, err := plotter.NewScatter(s.Points)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		points.Color = s.Color
		points.Shape = s.Shape
		points.Radius = vg.Points(3)

		style := plotter.DefaultLineStyle
		style.Color = s.Color
		style.Width = vg.Points(2)
		for _, seg := range s.Segments {
			if len(seg) < 2 {
				continue
			}
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", s.Name, err)
			}
			line.LineStyle = style
			pl.Add(line)
		}
		pl.Add(points)
		pl.Legend.Add(s.Name, &plotter.Line{LineStyle: style}, points)
		drawn = true
	}

	ticks := make([]plot.Tick, len(p.Ticks))
	for i, x := range p.Ticks {
		ticks[i] = plot.Tick{Value: x, Label: strconv.FormatFloat(x, 'f', -1, 64)}
	}
	pl.X.Tick.Marker = plot.ConstantTicks(ticks)
	pl.Legend.Top = true

	if !drawn {
		pl.Y.Min, pl.Y.Max = 0, 1
		return pl, nil
	}
	pl.Y.Min, pl.Y.Max = padRange(pl.Y.Min, pl.Y.Max)
	return pl, nil
}

// padRange widens [lo, hi] by 5% on each side.
func padRange(lo, hi float64) (float64, float64) {
	lo, hi = lo*0.95, hi*1.05
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// WritePNG renders c as a PNG image to w.
func (c *Chart) WritePNG(w io.Writer) error {
	if len(c.Panels) == 0 {
		return fmt.Errorf("chart has no panels")
	}
	dpi := c.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}

	plots := make([][]*plot.Plot, 1)
	for i := range c.Panels {
		pl, err := c.Panels[i].plot()
		if err != nil {
			return err
		}
		plots[0] = append(plots[0], pl)
	}

	img := vgimg.NewWith(
		vgimg.UseWH(panelWidth*vg.Length(len(plots[0])), panelHeight),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 5,
		PadY:      vg.Millimeter * 5,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i, pl := range plots[0] {
		pl.Draw(canvases[0][i])
	}

	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// Save renders c as a PNG file at path, creating its directory.
func (c *Chart) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
