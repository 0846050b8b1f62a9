// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/psa-sched/benchviz/benchgrid"
)

// HeatmapLabels are the fixed texts of a heatmap.
type HeatmapLabels struct {
	Title, X, Y, Scale string
}

// DefaultHeatmapLabels describe a grid of execution times indexed by
// task count (columns) and processor count (rows).
var DefaultHeatmapLabels = HeatmapLabels{
	Title: "Тепловая карта времени выполнения алгоритма\nВ зависимости от количества задач и процессоров",
	X:     "Количество задач",
	Y:     "Количество процессоров",
	Scale: "Время выполнения (мс)",
}

const (
	heatmapWidth  = 16 * vg.Inch
	heatmapHeight = 10 * vg.Inch

	// Space reserved to the right of the grid for the color bar.
	colorBarWidth = 1.6 * vg.Inch
)

// Heatmap returns a heatmap of t using DefaultHeatmapLabels.
func Heatmap(t *benchgrid.Table) (*Figure, error) {
	return HeatmapWith(t, DefaultHeatmapLabels)
}

// HeatmapWith returns a heatmap of t, one cell per value, with the
// first row of t at the top. Cells are colored on a yellow-orange-red
// scale spanning the smallest to the largest value in t and annotated
// with their value rounded to an integer. Missing cells are left
// blank.
//
// It returns ErrNoData if t has no rows, no columns, or no
// non-missing values.
func HeatmapWith(t *benchgrid.Table, labels HeatmapLabels) (*Figure, error) {
	if t.Empty() {
		return nil, ErrNoData
	}
	min, max, ok := t.Bounds()
	if !ok {
		return nil, ErrNoData
	}
	if min == max {
		// Give a constant grid a non-empty scale.
		min, max = min-0.5, max+0.5
	}

	pal, err := brewer.GetPalette(brewer.TypeSequential, "YlOrRd", 9)
	if err != nil {
		return nil, err
	}

	grid := tableGrid{t}
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = min, max
	hm.NaN = color.White

	p := newPlot(labels.Title, labels.X, labels.Y)
	bold(p)
	p.Title.Padding = vg.Points(20)
	p.Add(hm, &cellBorders{cols: len(t.Cols), rows: len(t.Rows)})

	ann, err := annotations(grid, pal.Colors(), min, max)
	if err != nil {
		return nil, err
	}
	if ann != nil {
		p.Add(ann)
	}

	p.X.Tick.Marker = labelTicks(t.Cols, false)
	p.Y.Tick.Marker = labelTicks(t.Rows, true)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop
	p.X.Padding = 0
	p.Y.Padding = 0

	bar := colorBar(pal, min, max, labels.Scale)

	return &Figure{
		Width:  heatmapWidth,
		Height: heatmapHeight,
		draw: func(dc draw.Canvas) {
			p.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))
			// Line the bar up with the grid, below the title
			// and above the rotated column labels.
			w := dc.Max.X - dc.Min.X
			bar.Draw(draw.Crop(dc, w-colorBarWidth, 0, 1.1*vg.Inch, -1.2*vg.Inch))
		},
	}, nil
}

// tableGrid adapts a Table to plotter.GridXYZ. Grid row 0 is the
// bottom of the plot, so it holds the last row of the table.
type tableGrid struct {
	t *benchgrid.Table
}

func (g tableGrid) Dims() (c, r int) { return len(g.t.Cols), len(g.t.Rows) }
func (g tableGrid) X(c int) float64  { return float64(c) }
func (g tableGrid) Y(r int) float64  { return float64(r) }
func (g tableGrid) Z(c, r int) float64 {
	return g.t.At(len(g.t.Rows)-1-r, c)
}

// labelTicks returns a tick at every cell center, labelled in order.
// If flip is set, the first label is placed at the top of the axis.
func labelTicks(labels []string, flip bool) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, l := range labels {
		v := i
		if flip {
			v = len(labels) - 1 - i
		}
		ticks[i] = plot.Tick{Value: float64(v), Label: l}
	}
	return ticks
}

// cellBorders draws thin lines between heatmap cells.
type cellBorders struct {
	cols, rows int
}

var borderStyle = draw.LineStyle{Color: color.Gray{128}, Width: vg.Points(0.5)}

func (b *cellBorders) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x0, x1 := trX(-0.5), trX(float64(b.cols)-0.5)
	y0, y1 := trY(-0.5), trY(float64(b.rows)-0.5)
	for i := 0; i <= b.cols; i++ {
		x := trX(float64(i) - 0.5)
		c.StrokeLine2(borderStyle, x, y0, x, y1)
	}
	for j := 0; j <= b.rows; j++ {
		y := trY(float64(j) - 0.5)
		c.StrokeLine2(borderStyle, x0, y, x1, y)
	}
}

// annotations labels every non-missing cell of g with its rounded
// value, in black on light cells and white on dark ones.
func annotations(g tableGrid, pal []color.Color, min, max float64) (*plotter.Labels, error) {
	var xyl plotter.XYLabels
	var dark []bool
	cols, rows := g.Dims()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v := g.Z(c, r)
			if benchgrid.IsMissing(v) {
				continue
			}
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(c), Y: g.Y(r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.0f", v))
			dark = append(dark, isDark(colorOf(pal, min, max, v)))
		}
	}
	if len(xyl.XYs) == 0 {
		return nil, nil
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		sty := &labels.TextStyle[i]
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YCenter
		sty.Font.Size = vg.Points(9)
		sty.Color = color.Black
		if dark[i] {
			sty.Color = color.White
		}
	}
	return labels, nil
}

// colorOf returns the palette color plotter.HeatMap uses for v.
func colorOf(pal []color.Color, min, max, v float64) color.Color {
	ps := float64(len(pal)-1) / (max - min)
	i := int((v-min)*ps + 0.5)
	if i < 0 {
		i = 0
	} else if i >= len(pal) {
		i = len(pal) - 1
	}
	return pal[i]
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return lum < 0.5*0xffff
}

// colorBar returns a narrow plot showing the scale of pal from min to
// max.
func colorBar(pal palette.Palette, min, max float64, label string) *plot.Plot {
	hm := plotter.NewHeatMap(scaleGrid{min: min, max: max, n: 256}, pal)
	hm.Min, hm.Max = min, max

	p := plot.New()
	p.Add(hm)
	p.HideX()
	p.Y.Label.Text = label
	p.Y.Label.TextStyle.Font.Size = vg.Points(labelSize)
	p.Y.Tick.Label.Font.Size = vg.Points(tickSize)
	p.Y.Padding = 0
	return p
}

// scaleGrid is a single column of n cells evenly spanning [min, max].
type scaleGrid struct {
	min, max float64
	n        int
}

func (g scaleGrid) Dims() (c, r int)   { return 1, g.n }
func (g scaleGrid) X(c int) float64    { return 0 }
func (g scaleGrid) Z(c, r int) float64 { return g.Y(r) }
func (g scaleGrid) Y(r int) float64 {
	step := (g.max - g.min) / float64(g.n)
	return g.min + (float64(r)+0.5)*step
}
