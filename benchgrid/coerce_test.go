// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgrid

import (
	"math"
	"strings"
	"testing"
)

func TestCoerce(t *testing.T) {
	raw := &RawTable{
		Index: "p",
		Rows:  []string{"2", "4"},
		Cols:  []string{"10", "20", "30", "40"},
		Cells: [][]string{
			{"15", " 31.5 ", "1e3", "-2"},
			{"N/A", "", "Inf", "NaN"},
		},
	}
	tab := Coerce(raw)

	want := [][]float64{
		{15, 31.5, 1000, -2},
		{math.NaN(), math.NaN(), math.NaN(), math.NaN()},
	}
	for i := range want {
		for j := range want[i] {
			got := tab.At(i, j)
			if IsMissing(want[i][j]) {
				if !IsMissing(got) {
					t.Errorf("cell %d,%d (%q) = %v, want missing", i, j, raw.Cells[i][j], got)
				}
			} else if got != want[i][j] {
				t.Errorf("cell %d,%d (%q) = %v, want %v", i, j, raw.Cells[i][j], got, want[i][j])
			}
		}
	}
	if n := tab.Missing(); n != 4 {
		t.Errorf("Missing() = %d, want 4", n)
	}
	if tab.Index != "p" || len(tab.Rows) != 2 || len(tab.Cols) != 4 {
		t.Errorf("labels not preserved: %+v", tab)
	}
}

func TestCoerceOnlyNumbers(t *testing.T) {
	// Whatever the input, the result is finite or missing.
	cells := []string{"", "x", "12", "1,5", "0x10", "+Inf", "-inf", "nan", "3.25", "5%", "1e400", "×"}
	raw := &RawTable{Rows: []string{"r"}, Cols: make([]string, len(cells)), Cells: [][]string{cells}}
	for _, v := range Coerce(raw).Values[0] {
		if !IsMissing(v) && (math.IsInf(v, 0) || math.IsNaN(v)) {
			t.Errorf("non-finite value %v survived coercion", v)
		}
	}
}

func TestCoerceFromCSV(t *testing.T) {
	raw, err := Read(strings.NewReader("p,1,2\n2,N/A,7\n"), "test")
	if err != nil {
		t.Fatal(err)
	}
	tab := Coerce(raw)
	if !IsMissing(tab.At(0, 0)) {
		t.Errorf("N/A cell = %v, want missing", tab.At(0, 0))
	}
	if tab.At(0, 1) != 7 {
		t.Errorf("cell = %v, want 7", tab.At(0, 1))
	}
}

func TestBounds(t *testing.T) {
	tab := &Table{
		Rows:   []string{"a", "b"},
		Cols:   []string{"x", "y"},
		Values: [][]float64{{3, Missing()}, {-1, 8}},
	}
	min, max, ok := tab.Bounds()
	if !ok || min != -1 || max != 8 {
		t.Errorf("Bounds() = %v, %v, %v, want -1, 8, true", min, max, ok)
	}

	allMissing := &Table{Rows: []string{"a"}, Cols: []string{"x"}, Values: [][]float64{{Missing()}}}
	if _, _, ok := allMissing.Bounds(); ok {
		t.Errorf("Bounds() of all-missing table reported ok")
	}
}
