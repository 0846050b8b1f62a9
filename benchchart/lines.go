// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/psa-sched/benchviz/benchreport"
)

// SeriesLabels are the fixed texts of the parallel performance chart.
type SeriesLabels struct {
	Threads string

	TimeTitle, Time               string
	ImprovementTitle, Improvement string
}

// DefaultSeriesLabels describe execution time and improvement by
// thread count.
var DefaultSeriesLabels = SeriesLabels{
	Threads:          "Количество потоков",
	TimeTitle:        "Зависимость времени выполнения\nот количества потоков",
	Time:             "Время выполнения (мс)",
	ImprovementTitle: "Зависимость процента улучшения\nот количества потоков",
	Improvement:      "Процент улучшения (%)",
}

const (
	seriesWidth  = 15 * vg.Inch
	seriesHeight = 6 * vg.Inch
)

var (
	timeColor        = color.RGBA{B: 0xff, A: 0xff}
	improvementColor = color.RGBA{R: 0xff, A: 0xff}

	// Light gray, like a 30% opaque grid over white.
	gridColor = color.NRGBA{0xb0, 0xb0, 0xb0, 0x4d}
)

// ParallelPerformance returns a chart of pts using
// DefaultSeriesLabels.
func ParallelPerformance(pts []benchreport.Point) (*Figure, error) {
	return ParallelPerformanceWith(pts, DefaultSeriesLabels)
}

// ParallelPerformanceWith returns two line charts side by side:
// execution time by thread count on the left and improvement
// percentage by thread count on the right. Both have a tick at every
// thread count in pts.
//
// It returns ErrNoData if pts is empty.
func ParallelPerformanceWith(pts []benchreport.Point, labels SeriesLabels) (*Figure, error) {
	if len(pts) == 0 {
		return nil, ErrNoData
	}
	times := make(plotter.XYs, len(pts))
	imps := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		x := float64(pt.Threads)
		times[i] = plotter.XY{X: x, Y: float64(pt.ExecutionTimeMS)}
		imps[i] = plotter.XY{X: x, Y: pt.ImprovementPercentage}
	}
	ticks := threadTicks(benchreport.Threads(pts))

	left, err := linePlot(labels.TimeTitle, labels.Threads, labels.Time, times, ticks, timeColor, draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	right, err := linePlot(labels.ImprovementTitle, labels.Threads, labels.Improvement, imps, ticks, improvementColor, draw.BoxGlyph{})
	if err != nil {
		return nil, err
	}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Inch / 2,
		PadTop:    vg.Inch / 8,
		PadBottom: vg.Inch / 8,
		PadLeft:   vg.Inch / 8,
		PadRight:  vg.Inch / 4,
	}
	return &Figure{
		Width:  seriesWidth,
		Height: seriesHeight,
		draw: func(dc draw.Canvas) {
			left.Draw(tiles.At(dc, 0, 0))
			right.Draw(tiles.At(dc, 1, 0))
		},
	}, nil
}

func linePlot(title, xLabel, yLabel string, xys plotter.XYs, ticks plot.ConstantTicks, clr color.Color, shape draw.GlyphDrawer) (*plot.Plot, error) {
	p := newPlot(title, xLabel, yLabel)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Width = vg.Points(0.8)
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Width = vg.Points(0.8)
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = clr
	line.LineStyle.Width = vg.Points(2)
	points.GlyphStyle.Color = clr
	points.GlyphStyle.Shape = shape
	points.GlyphStyle.Radius = vg.Points(4)
	p.Add(line, points)

	p.X.Tick.Marker = ticks
	return p, nil
}

// threadTicks returns a labelled tick at every thread count.
func threadTicks(threads []int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(threads))
	for i, n := range threads {
		ticks[i] = plot.Tick{Value: float64(n), Label: strconv.Itoa(n)}
	}
	return ticks
}
