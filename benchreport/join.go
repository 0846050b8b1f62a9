// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"github.com/aclements/go-gg/table"
)

// A Point is one thread count with both of its measurements.
type Point struct {
	Threads               int
	ExecutionTimeMS       int
	ImprovementPercentage float64
}

// Join returns the inner join of rep's timings and improvements on
// their thread counts. Thread counts that appear in only one section
// are dropped.
//
// Points are in increasing order of thread count, not in the order the
// timing section lists them.
func (rep *Report) Join() []Point {
	if len(rep.Timings) == 0 || len(rep.Improvements) == 0 {
		return nil
	}
	times := table.TableFromStructs(rep.Timings)
	imps := table.TableFromStructs(rep.Improvements)

	g := table.Join(times, "Threads", imps, "Threads")
	g = table.SortBy(g, "Threads")
	t := g.Table(table.RootGroupID)
	if t == nil || t.Len() == 0 {
		return nil
	}

	threads := t.MustColumn("Threads").([]int)
	ms := t.MustColumn("ExecutionTimeMS").([]int)
	pct := t.MustColumn("ImprovementPercentage").([]float64)
	pts := make([]Point, t.Len())
	for i := range pts {
		pts[i] = Point{threads[i], ms[i], pct[i]}
	}
	return pts
}

// Threads returns the thread counts of pts.
func Threads(pts []Point) []int {
	out := make([]int, len(pts))
	for i, p := range pts {
		out[i] = p.Threads
	}
	return out
}
