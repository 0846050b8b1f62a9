// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out aligned text tables.
package texttab

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row, Col and Cell return the Table so callers can chain them to
// build up a row at once.
type Table struct {
	cells []cell
	cols  int

	curRow, curCol int
}

type cell struct {
	row, col   int
	value      string
	leftMargin string
	alignment  align
}

// A CellOption changes the layout of a single cell.
type CellOption func(c *cell)

// LeftMargin sets the text printed between a cell and the column to
// its left. The default is a single space.
func LeftMargin(x string) CellOption {
	return func(c *cell) {
		c.leftMargin = x
	}
}

var (
	Left   CellOption = func(c *cell) { c.alignment = alignLeft }
	Center CellOption = func(c *cell) { c.alignment = alignCenter }
	Right  CellOption = func(c *cell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) lpad(s string, w int) string {
	switch a {
	default:
		return s
	case alignCenter:
		l := (w - utf8.RuneCountInString(s)) / 2
		return fmt.Sprintf("%*s%s", l, "", s)
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if len(t.cells) > 0 {
		t.curRow++
	}
	t.curCol = 0
	return t
}

// Col skips to column "col" in table t. Columns are numbered starting
// at 0.
func (t *Table) Col(col int) *Table {
	if col < t.curCol {
		panic(fmt.Sprintf("cannot move from column %d to earlier column %d", t.curCol, col))
	}
	t.curCol = col
	return t
}

// Cell adds a cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	lMargin := " "
	if t.curCol == 0 || value == "" {
		lMargin = ""
	}
	c := cell{t.curRow, t.curCol, value, lMargin, alignLeft}
	for _, o := range opts {
		o(&c)
	}
	t.cells = append(t.cells, c)

	t.curCol++
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// Format lays out table t and writes it to w. Trailing spaces are
// never printed.
func (t *Table) Format(w io.Writer) error {
	// Each column is as wide as its widest margin plus its widest
	// value.
	lmargin := make([]int, t.cols)
	width := make([]int, t.cols)
	for _, c := range t.cells {
		if n := utf8.RuneCountInString(c.leftMargin); n > lmargin[c.col] {
			lmargin[c.col] = n
		}
		if n := utf8.RuneCountInString(c.value); n > width[c.col] {
			width[c.col] = n
		}
	}
	offs := make([]int, t.cols)
	off := 0
	for i := range offs {
		offs[i] = off
		off += lmargin[i] + width[i]
	}

	sort.SliceStable(t.cells, func(i, j int) bool {
		if t.cells[i].row != t.cells[j].row {
			return t.cells[i].row < t.cells[j].row
		}
		return t.cells[i].col < t.cells[j].col
	})

	var line strings.Builder
	row := 0
	flush := func() error {
		_, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(line.String(), " "))
		line.Reset()
		return err
	}
	for _, c := range t.cells {
		for c.row > row {
			if err := flush(); err != nil {
				return err
			}
			row++
		}
		// Pad to the cell's column, then print its margin and
		// value.
		pad := offs[c.col] - utf8.RuneCountInString(line.String())
		fmt.Fprintf(&line, "%*s%*s%s", pad, "", lmargin[c.col], c.leftMargin, c.alignment.lpad(c.value, width[c.col]))
	}
	if len(t.cells) > 0 {
		return flush()
	}
	return nil
}
