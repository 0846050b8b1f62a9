// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders benchmark tables and series as images.
//
// Heatmap draws a benchgrid.Table as a color-mapped grid and
// ParallelPerformance draws a joined benchreport series as two line
// charts. Both return a Figure, which can be written as PNG, SVG or
// PDF.
package benchchart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("benchchart: no data to plot")

// DefaultDPI is the resolution of raster output.
const DefaultDPI = 300

// A Figure is a fixed-size drawing made of one or more plots.
type Figure struct {
	Width, Height vg.Length

	draw func(dc draw.Canvas)
}

// Formats lists the output formats understood by Write, keyed by
// file extension.
var Formats = []string{"png", "svg", "pdf"}

// FormatOf returns the output format for path, based on its
// extension. Paths without a known extension are written as PNG.
func FormatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if ext == f {
			return f
		}
	}
	return "png"
}

// Write draws f and encodes it to w in the given format. dpi applies
// only to raster formats; if it is not positive, DefaultDPI is used.
func (f *Figure) Write(w io.Writer, format string, dpi int) error {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	var c vg.CanvasWriterTo
	switch format {
	case "png":
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(f.Width, f.Height),
			vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}
	case "svg":
		c = vgsvg.New(f.Width, f.Height)
	case "pdf":
		c = vgpdf.New(f.Width, f.Height)
	default:
		return fmt.Errorf("benchchart: unknown image format %q", format)
	}

	dc := draw.New(c)
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())
	f.draw(dc)

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("benchchart: encoding %s: %w", format, err)
	}
	return nil
}

// Save writes f to the named file, choosing the format from the
// file's extension. The image is fully encoded before the file is
// created, so a failed render leaves no partial output.
func (f *Figure) Save(path string, dpi int) error {
	var buf bytes.Buffer
	if err := f.Write(&buf, FormatOf(path), dpi); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}

// Fixed text styles shared by all charts.
const (
	titleSize = 14
	labelSize = 12
	tickSize  = 10
)

// bold sets the title and axis labels of p in bold.
func bold(p *plot.Plot) {
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.TextStyle.Font.Weight = xfont.WeightBold
	p.Y.Label.TextStyle.Font.Weight = xfont.WeightBold
}

// newPlot returns a plot with the shared title and axis styling.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(titleSize)
	p.Title.Padding = vg.Points(12)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(labelSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(labelSize)
	p.X.Tick.Label.Font.Size = vg.Points(tickSize)
	p.Y.Tick.Label.Font.Size = vg.Points(tickSize)
	return p
}
