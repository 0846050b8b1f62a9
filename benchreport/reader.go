// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader reads a parallel benchmark report.
//
// Its API is modeled on bufio.Scanner. Each call to Scan produces one
// Record: a *Timing, an *Improvement, or a *SyntaxError for a line
// that could not be parsed. Syntax errors do not stop the Reader.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s       *bufio.Scanner
	err     error // current I/O error
	markers Markers

	fileName string
	line     int

	sec     Section
	secRows int              // data rows in the current section
	seen    map[Section]bool // sections opened so far
	threads map[Section]map[int]int

	rec Record
}

// Markers are the phrases that announce the sections of a report.
// A line containing a marker opens the corresponding section.
type Markers struct {
	Timing      string
	Improvement string
}

// DefaultMarkers are the section headers written by the scheduler's
// parallel benchmark.
var DefaultMarkers = Markers{
	Timing:      "Среднее время",
	Improvement: "Среднее улучшение",
}

// A Section identifies the kind of records in a block of the report.
type Section int

const (
	NoSection Section = iota
	TimingSection
	ImprovementSection
)

func (s Section) String() string {
	switch s {
	case NoSection:
		return "none"
	case TimingSection:
		return "timing"
	case ImprovementSection:
		return "improvement"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// A SyntaxError represents a syntax error on a particular line of a
// report.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

var noRecord = &SyntaxError{"", 0, "Reader.Scan has not been called"}

// NewReader constructs a reader to parse a report from r using
// DefaultMarkers. fileName is used in error messages; it is purely
// diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. If the
// reader has no markers, it uses DefaultMarkers.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	if r.markers == (Markers{}) {
		r.markers = DefaultMarkers
	}
	r.err = nil
	r.fileName = fileName
	r.line = 0
	r.sec = NoSection
	r.secRows = 0
	r.seen = make(map[Section]bool)
	r.threads = make(map[Section]map[int]int)
	r.rec = noRecord
}

// SetMarkers changes the section markers. It should be called before
// the first call to Scan.
func (r *Reader) SetMarkers(m Markers) {
	r.markers = m
}

// Scan advances the reader to the next record and reports whether a
// record was read.
// The caller should use the Result method to get the record.
// If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		if rec := r.parseLine(r.s.Text()); rec != nil {
			r.rec = rec
			return true
		}
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Result returns the record that was just read by Scan. The Reader
// does not retain the record, so the caller may keep it.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// Seen reports whether section s has been opened so far.
func (r *Reader) Seen(s Section) bool {
	return r.seen[s]
}

func (r *Reader) newSyntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...)}
}

// parseLine consumes one line and returns the record it produces, or
// nil if the line carries no data.
func (r *Reader) parseLine(line string) Record {
	if sec := r.sectionOf(line); sec != NoSection {
		return r.open(sec)
	}

	if !strings.Contains(line, "|") {
		// Any non-data line after the first data row closes the
		// section. Before that, titles, blank lines and
		// separators may sit between the header and the data.
		if r.secRows > 0 {
			r.sec = NoSection
			r.secRows = 0
		}
		return nil
	}
	if isSeparator(line) {
		return nil
	}

	fields, ok := splitRow(line)
	if r.sec == NoSection {
		return r.newSyntaxError("data row outside of %q or %q section", r.markers.Timing, r.markers.Improvement)
	}
	if !ok {
		return r.newSyntaxError("want 2 fields separated by |, got %d", len(fields))
	}
	threads, err := strconv.Atoi(fields[0])
	if err != nil {
		if r.secRows == 0 && !isNumber(fields[1]) {
			// A column header such as "Потоки | Время".
			return nil
		}
		return r.newSyntaxError("bad thread count %q", fields[0])
	}
	if threads <= 0 {
		return r.newSyntaxError("thread count %d must be positive", threads)
	}
	if prev, ok := r.threads[r.sec][threads]; ok {
		return r.newSyntaxError("duplicate %s row for %d threads (first on line %d)", r.sec, threads, prev)
	}

	var rec Record
	switch r.sec {
	case TimingSection:
		ms, err := strconv.Atoi(fields[1])
		if err != nil {
			return r.newSyntaxError("bad execution time %q: want integer milliseconds", fields[1])
		}
		rec = &Timing{Threads: threads, ExecutionTimeMS: ms, fileName: r.fileName, line: r.line}
	case ImprovementSection:
		s := strings.TrimSpace(strings.TrimSuffix(fields[1], "%"))
		pct, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r.newSyntaxError("bad improvement percentage %q", fields[1])
		}
		rec = &Improvement{Threads: threads, ImprovementPercentage: pct, fileName: r.fileName, line: r.line}
	}
	r.secRows++
	r.threads[r.sec][threads] = r.line
	return rec
}

// isNumber reports whether s is a number, possibly followed by "%".
func isNumber(s string) bool {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// sectionOf returns the section announced by line, if any.
func (r *Reader) sectionOf(line string) Section {
	switch {
	case r.markers.Timing != "" && strings.Contains(line, r.markers.Timing):
		return TimingSection
	case r.markers.Improvement != "" && strings.Contains(line, r.markers.Improvement):
		return ImprovementSection
	}
	return NoSection
}

func (r *Reader) open(sec Section) Record {
	if r.sec == sec && r.secRows == 0 {
		// A title line followed by a column header that repeats
		// the marker.
		return nil
	}
	r.sec = sec
	r.secRows = 0
	if r.seen[sec] {
		r.sec = NoSection
		return r.newSyntaxError("%s section appears more than once", sec)
	}
	r.seen[sec] = true
	r.threads[sec] = make(map[int]int)
	return nil
}

// isSeparator reports whether line is a rule such as "------" or
// "---|---".
func isSeparator(line string) bool {
	rule := false
	for _, c := range line {
		switch c {
		case '-', '=':
			rule = true
		case '+', '|', ' ', '\t':
		default:
			return false
		}
	}
	return rule
}

// splitRow splits a "value | value" row into its trimmed fields.
// Leading and trailing pipes, as in "| 4 | 120 |", are ignored.
func splitRow(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	fields := strings.Split(line, "|")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields, len(fields) == 2
}
