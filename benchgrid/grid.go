// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchgrid reads labeled grids of benchmark measurements.
//
// A grid is a CSV file whose header row names the columns (for
// example, task counts) and whose first column names the rows (for
// example, processor counts):
//
//	processors,10,20,40
//	2,15,31,66
//	4,9,N/A,35
//
// Read and ReadFile load such a file into a RawTable of strings.
// Coerce converts a RawTable into a Table of float64 values in which
// cells that are not numbers are replaced by a missing-value marker.
package benchgrid

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A RawTable is a labeled grid of unparsed cells.
type RawTable struct {
	// Index is the header of the label column. It is often empty.
	Index string

	// Rows and Cols are the row and column labels, in file order.
	Rows, Cols []string

	// Cells[i][j] is the cell in row i and column j. Every row has
	// exactly len(Cols) cells.
	Cells [][]string
}

// A Table is a labeled grid of numeric values.
//
// Missing values are represented by NaN; use IsMissing to test for
// them.
type Table struct {
	Index      string
	Rows, Cols []string

	// Values[i][j] is the value in row i and column j.
	Values [][]float64
}

// Missing returns the missing-value marker.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 {
	return t.Values[i][j]
}

// Empty reports whether t has no rows or no columns.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0 || len(t.Cols) == 0
}

// Present returns the non-missing values of t in row-major order.
func (t *Table) Present() []float64 {
	var xs []float64
	for _, row := range t.Values {
		for _, v := range row {
			if !IsMissing(v) {
				xs = append(xs, v)
			}
		}
	}
	return xs
}

// Missing returns the number of missing cells in t.
func (t *Table) Missing() int {
	n := 0
	for _, row := range t.Values {
		for _, v := range row {
			if IsMissing(v) {
				n++
			}
		}
	}
	return n
}

// Bounds returns the smallest and largest non-missing values in t.
// If every cell is missing, ok is false.
func (t *Table) Bounds() (min, max float64, ok bool) {
	xs := t.Present()
	if len(xs) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(xs)
	return min, max, true
}
