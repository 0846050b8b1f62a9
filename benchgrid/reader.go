// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgrid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// A SyntaxError represents a malformed grid file.
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

const byteOrderMark = "\ufeff"

// ReadFile reads the grid stored in the named CSV file.
//
// If the file cannot be opened, the error is the one returned by
// os.Open, so callers can test it with errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads a grid in CSV form from r. fileName is used in error
// messages; it is purely diagnostic.
//
// The first record is the header: its first field names the label
// column and the remaining fields are the column labels. Every
// following record starts with a row label. All records must have
// the same number of fields as the header.
func Read(r io.Reader, fileName string) (*RawTable, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0 // All records must match the header.

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, "empty grid: missing header row"}
	} else if err != nil {
		return nil, csvError(fileName, err)
	}
	if len(header) < 2 {
		return nil, &SyntaxError{fileName, 1, "header has no data columns"}
	}
	header[0] = strings.TrimPrefix(header[0], byteOrderMark)

	t := &RawTable{
		Index: strings.TrimSpace(header[0]),
		Cols:  trimAll(header[1:]),
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		t.Rows = append(t.Rows, strings.TrimSpace(rec[0]))
		t.Cells = append(t.Cells, rec[1:])
	}
	return t, nil
}

// csvError converts an encoding/csv error into a *SyntaxError.
func csvError(fileName string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		msg := perr.Err.Error()
		if perr.Err == csv.ErrFieldCount {
			msg = "row has a different number of fields than the header"
		}
		return &SyntaxError{fileName, perr.Line, msg}
	}
	return fmt.Errorf("%s: %w", fileName, err)
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
