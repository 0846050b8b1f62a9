// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psa-sched/benchviz/benchchart"
	"github.com/psa-sched/benchviz/benchreport"
	"github.com/psa-sched/benchviz/internal/diff"
)

func TestGolden(t *testing.T) {
	out := filepath.Join(t.TempDir(), "parallel_performance.png")
	golden(t, "results_parallel", "-table", "-dpi", "20", "-o", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding %s: %v", out, err)
	}
	if b := img.Bounds(); b.Dx() != 15*20 || b.Dy() != 6*20 {
		t.Errorf("image is %dx%d, want 300x120", b.Dx(), b.Dy())
	}
}

func TestHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "parallel_performance.svg")
	in := filepath.Join("testdata", "results_parallel.txt")
	var stdout, stderr bytes.Buffer
	if err := benchthreads(&stdout, &stderr, []string{"-html", "-in", in, "-o", out}); err != nil {
		t.Fatal(err)
	}
	got := stdout.String()
	for _, want := range []string{
		"<tr><th class='label'>threads<th>time (ms)<th>improvement\n",
		"<tr><td class='label'>2<td>812<td>46.7%\n",
		"<tr><td class='label'>16<td>288<td>81.1%\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML output does not contain %q:\n%s", want, got)
		}
	}
	// Thread count 12 has no timing, so it is not joined.
	if strings.Contains(got, "<td class='label'>12<") {
		t.Errorf("HTML output contains unjoined thread count 12:\n%s", got)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "parallel_performance.png")
	run := func(in string) error {
		var stdout, stderr bytes.Buffer
		return benchthreads(&stdout, &stderr, []string{"-in", in, "-o", out})
	}

	err := run(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing input: got %v, want fs.ErrNotExist", err)
	}

	// No thread count appears in both sections.
	err = run(filepath.Join("testdata", "disjoint.txt"))
	if !errors.Is(err, benchchart.ErrNoData) {
		t.Errorf("disjoint sections: got %v, want ErrNoData", err)
	}

	err = run(filepath.Join("testdata", "malformed.txt"))
	var se *benchreport.SyntaxError
	if !errors.As(err, &se) || se.Line != 3 {
		t.Errorf("malformed timing: got %v, want syntax error on line 3", err)
	}

	if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("failed runs left %s behind", out)
	}
}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := benchthreads(&stdout, &stderr, []string{"a.txt"}); !errors.Is(err, errUsage) {
		t.Errorf("extra argument: got %v, want usage error", err)
	}
	if !strings.HasPrefix(stderr.String(), "usage: benchthreads") {
		t.Errorf("usage message missing, got:\n%s", stderr.String())
	}

	stderr.Reset()
	if err := benchthreads(&stdout, &stderr, []string{"-table", "-html"}); !errors.Is(err, errUsage) {
		t.Errorf("-table -html: got %v, want usage error", err)
	}
}

// golden runs benchthreads on testdata/name.txt and compares its
// standard output with testdata/name.stdout.
func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	args = append([]string{"-in", filepath.Join("testdata", name+".txt")}, args...)
	t.Logf("benchthreads %s", strings.Join(args, " "))

	var got, gotErr bytes.Buffer
	if err := benchthreads(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()
	wantPath := filepath.Join("testdata", name+"."+sub)
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}
	if d := diff.Diff(wantPath, want, got); d != "" {
		t.Errorf("\n%s", d)
	}
}
