// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchheat draws a heatmap of algorithm execution time by task count
// and processor count.
//
// Usage:
//
//	benchheat [-in file.csv] [-o image] [-dpi n] [-table | -html]
//
// The input is a CSV file whose header row lists task counts and whose
// first column lists processor counts:
//
//	processors,10,20,40
//	2,15,31,66
//	4,9,N/A,35
//
// Cells that are not numbers are treated as missing and left blank.
// By default benchheat reads results/results_consistent.csv and
// writes results/heatmap.png. The image format follows the extension
// of the -o file: .png, .svg or .pdf.
//
// With -table, benchheat also prints the grid it plots. With -html, it
// prints the grid as an HTML page instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/psa-sched/benchviz/benchchart"
	"github.com/psa-sched/benchviz/benchgrid"
	"github.com/psa-sched/benchviz/internal/htmltab"
	"github.com/psa-sched/benchviz/internal/texttab"
)

const (
	defaultIn  = "results/results_consistent.csv"
	defaultOut = "results/heatmap.png"
)

var errUsage = errors.New("usage error")

func main() {
	log.SetPrefix("benchheat: ")
	log.SetFlags(0)
	err := benchheat(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

func benchheat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchheat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: benchheat [options]\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	flagIn := flags.String("in", defaultIn, "read the grid from CSV `file`")
	flagOut := flags.String("o", defaultOut, "write the heatmap to `file` (.png, .svg or .pdf)")
	flagDPI := flags.Int("dpi", benchchart.DefaultDPI, "resolution of PNG output in dots per inch")
	flagTable := flags.Bool("table", false, "print the grid as a text table")
	flagHTML := flags.Bool("html", false, "print the grid as an HTML table")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return errUsage
	}

	if *flagTable && *flagHTML {
		fmt.Fprintf(wErr, "-table and -html are mutually exclusive\n")
		return errUsage
	}

	var summary func(*benchgrid.Table) error
	switch {
	case *flagTable:
		summary = func(t *benchgrid.Table) error { return formatGrid(w, t) }
	case *flagHTML:
		summary = func(t *benchgrid.Table) error { return htmltab.Write(w, gridHTML(t)) }
	}
	return heatmap(*flagIn, *flagOut, *flagDPI, summary)
}

// heatmap reads the grid in inPath and writes its heatmap to outPath.
// If summary is not nil, it is called with the coerced grid first.
func heatmap(inPath, outPath string, dpi int, summary func(*benchgrid.Table) error) error {
	raw, err := benchgrid.ReadFile(inPath)
	if err != nil {
		return err
	}
	t := benchgrid.Coerce(raw)
	if summary != nil {
		if err := summary(t); err != nil {
			return err
		}
	}

	fig, err := benchchart.Heatmap(t)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	return fig.Save(outPath, dpi)
}

// formatGrid prints t with one line per row, missing cells shown as
// "-".
func formatGrid(w io.Writer, t *benchgrid.Table) error {
	var tab texttab.Table
	tab.Row().Cell(t.Index)
	for _, c := range t.Cols {
		tab.Cell(c, texttab.Right)
	}
	for i, r := range t.Rows {
		tab.Row().Cell(r)
		for j := range t.Cols {
			tab.Cell(cellText(t.At(i, j)), texttab.Right)
		}
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	if note := missingNote(t); note != "" {
		_, err := fmt.Fprintln(w, note)
		return err
	}
	return nil
}

// gridHTML returns t as an HTML table in the layout of formatGrid.
func gridHTML(t *benchgrid.Table) *htmltab.Table {
	h := &htmltab.Table{
		Caption: "Execution time (ms)",
		Index:   t.Index,
		Cols:    t.Cols,
		Note:    missingNote(t),
	}
	for i, r := range t.Rows {
		cells := make([]string, len(t.Cols))
		for j := range t.Cols {
			cells[j] = cellText(t.At(i, j))
		}
		h.Rows = append(h.Rows, htmltab.Row{Label: r, Cells: cells})
	}
	return h
}

func cellText(v float64) string {
	if benchgrid.IsMissing(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// missingNote describes the missing cells of t, or returns "" if there
// are none.
func missingNote(t *benchgrid.Table) string {
	n := t.Missing()
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d missing of %d cells", n, len(t.Rows)*len(t.Cols))
}
