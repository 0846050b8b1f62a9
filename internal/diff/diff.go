// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares test output against golden files.
package diff

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a unified diff from want to got, labelled with the
// given names. It returns "" if want and got are equal.
// If the "diff" command is unavailable, it returns both texts quoted.
func Diff(name string, want, got []byte) string {
	if bytes.Equal(want, got) {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}
	dir, err := os.MkdirTemp("", "benchviz_diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)

	wantPath, gotPath := filepath.Join(dir, "want"), filepath.Join(dir, "got")
	if err := os.WriteFile(wantPath, want, 0666); err != nil {
		return err.Error()
	}
	if err := os.WriteFile(gotPath, got, 0666); err != nil {
		return err.Error()
	}

	data, err := exec.Command("diff", "-u", "-L", name+" (want)", "-L", name+" (got)", wantPath, gotPath).CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files don't match.
		// Ignore that failure as long as we get output.
		err = nil
	}
	if err != nil {
		data = append(data, []byte(err.Error())...)
	}
	return string(data)
}
