// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgrid

import (
	"math"
	"strconv"
	"strings"
)

// Coerce converts every cell of raw to a number.
//
// Cells that are empty, are not valid floating-point numbers, or are
// infinite become the missing-value marker. Coerce never fails, so
// the result holds only finite numbers and missing values.
func Coerce(raw *RawTable) *Table {
	t := &Table{
		Index:  raw.Index,
		Rows:   append([]string(nil), raw.Rows...),
		Cols:   append([]string(nil), raw.Cols...),
		Values: make([][]float64, len(raw.Cells)),
	}
	for i, row := range raw.Cells {
		vals := make([]float64, len(row))
		for j, cell := range row {
			vals[j] = parseCell(cell)
		}
		t.Values[i] = vals
	}
	return t
}

func parseCell(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return Missing()
	}
	return v
}
