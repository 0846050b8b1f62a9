// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport parses the text report of a parallel benchmark
// and joins its sections into a per-thread-count series.
//
// A report contains two pipe-delimited sections, each announced by a
// header line that contains a section marker:
//
//	Потоки | Среднее время (мс)
//	---------------------------
//	1 | 1200
//	2 | 640
//
//	Потоки | Среднее улучшение
//	---------------------------
//	2 | 46.7%
//
// The first section records the mean execution time in milliseconds
// per thread count; the second records the improvement over the
// single-threaded run. A section ends at the first line without a "|"
// after its first data row. Before that row, a "|" line with no
// numeric field is a column header. Any other text in the report is
// ignored.
package benchreport

import (
	"fmt"
	"io"
	"os"
)

// A Record is one item in a report: a *Timing, an *Improvement, or a
// *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file.
	Pos() (fileName string, line int)
}

var _ Record = (*Timing)(nil)
var _ Record = (*Improvement)(nil)
var _ Record = (*SyntaxError)(nil)

// A Timing is a row of the execution time section.
type Timing struct {
	Threads         int
	ExecutionTimeMS int

	fileName string
	line     int
}

func (t *Timing) Pos() (fileName string, line int) {
	return t.fileName, t.line
}

// An Improvement is a row of the improvement section.
type Improvement struct {
	Threads               int
	ImprovementPercentage float64

	fileName string
	line     int
}

func (i *Improvement) Pos() (fileName string, line int) {
	return i.fileName, i.line
}

// A Report holds both sections of a report in file order.
type Report struct {
	Timings      []Timing
	Improvements []Improvement
}

// ReadFile reads the report stored in the named file.
//
// If the file cannot be opened, the error is the one returned by
// os.Open.
func ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a whole report from r using DefaultMarkers.
//
// It returns the first *SyntaxError in the report, if any. It also
// fails if either section is absent.
func Read(r io.Reader, fileName string) (*Report, error) {
	return ReadMarkers(r, fileName, DefaultMarkers)
}

// ReadMarkers is like Read, but recognizes sections by m.
func ReadMarkers(r io.Reader, fileName string, m Markers) (*Report, error) {
	rd := new(Reader)
	rd.SetMarkers(m)
	rd.Reset(r, fileName)

	rep := new(Report)
	for rd.Scan() {
		switch rec := rd.Result().(type) {
		case *SyntaxError:
			return nil, rec
		case *Timing:
			rep.Timings = append(rep.Timings, *rec)
		case *Improvement:
			rep.Improvements = append(rep.Improvements, *rec)
		}
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	for _, sec := range []Section{TimingSection, ImprovementSection} {
		if !rd.Seen(sec) {
			return nil, &SyntaxError{rd.fileName, rd.line, fmt.Sprintf("missing %s section", sec)}
		}
	}
	return rep, nil
}
