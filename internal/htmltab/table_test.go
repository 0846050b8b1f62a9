// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltab

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	tab := &Table{
		Caption: "grid",
		Index:   "processors",
		Cols:    []string{"10", "20"},
		Rows: []Row{
			{"2", []string{"15", "31"}},
			{"4", []string{"9", "-"}},
		},
		Note: "1 missing of 4 cells",
	}
	var buf bytes.Buffer
	if err := Write(&buf, tab); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"<!doctype html>",
		"<caption>grid</caption>",
		"<tr><th class='label'>processors<th>10<th>20\n",
		"<tr><td class='label'>2<td>15<td>31\n",
		"<tr><td class='label'>4<td>9<td>-\n",
		"<p>1 missing of 4 cells</p>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteEscapes(t *testing.T) {
	tab := &Table{
		Index: "<b>",
		Cols:  []string{"a&b"},
		Rows:  []Row{{"<script>", []string{"1"}}},
	}
	var buf bytes.Buffer
	if err := Write(&buf, tab); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if strings.Contains(got, "<b>") || strings.Contains(got, "<script>") {
		t.Errorf("labels were not escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") || !strings.Contains(got, "a&amp;b") {
		t.Errorf("escaped labels missing:\n%s", got)
	}
}

func TestWriteOptional(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, &Table{Index: "threads"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if strings.Contains(got, "<caption>") || strings.Contains(got, "<p>") {
		t.Errorf("empty caption or note was rendered:\n%s", got)
	}
}
