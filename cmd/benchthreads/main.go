// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchthreads plots execution time and improvement percentage by
// thread count from a parallel benchmark report.
//
// Usage:
//
//	benchthreads [-in report.txt] [-o image] [-dpi n] [-table | -html]
//
// The report holds two pipe-delimited sections, one headed by a line
// containing "Среднее время" (mean time in milliseconds per thread
// count) and one headed by a line containing "Среднее улучшение"
// (improvement percentage per thread count):
//
//	Потоки | Среднее время (мс)
//	---------------------------
//	1 | 1523
//	2 | 812
//
//	Потоки | Среднее улучшение
//	---------------------------
//	2 | 46.7%
//
// Only thread counts present in both sections are plotted. By default
// benchthreads reads research/results_parallel.txt and writes
// research/parallel_performance.png. The image format follows the
// extension of the -o file: .png, .svg or .pdf.
//
// With -table, benchthreads also prints the joined series. With -html,
// it prints the series as an HTML page instead.
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
	"github.com/psa-sched/benchviz/benchreport"
	"github.com/psa-sched/benchviz/internal/htmltab"
	"github.com/psa-sched/benchviz/internal/texttab"
)

const (
	defaultIn  = "research/results_parallel.txt"
	defaultOut = "research/parallel_performance.png"
)

var errUsage = errors.New("usage error")

func main() {
	log.SetPrefix("benchthreads: ")
	log.SetFlags(0)
	err := benchthreads(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

func benchthreads(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchthreads", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: benchthreads [options]\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	flagIn := flags.String("in", defaultIn, "read the report from `file`")
	flagOut := flags.String("o", defaultOut, "write the chart to `file` (.png, .svg or .pdf)")
	flagDPI := flags.Int("dpi", benchchart.DefaultDPI, "resolution of PNG output in dots per inch")
	flagTable := flags.Bool("table", false, "print the joined series as a text table")
	flagHTML := flags.Bool("html", false, "print the joined series as an HTML table")
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

	var summary func([]benchreport.Point) error
	switch {
	case *flagTable:
		summary = func(pts []benchreport.Point) error { return formatSeries(w, pts) }
	case *flagHTML:
		summary = func(pts []benchreport.Point) error { return htmltab.Write(w, seriesHTML(pts)) }
	}
	return parallelPerformance(*flagIn, *flagOut, *flagDPI, summary)
}

// parallelPerformance reads the report in inPath and writes its charts
// to outPath. If summary is not nil, it is called with the joined
// series first.
func parallelPerformance(inPath, outPath string, dpi int, summary func([]benchreport.Point) error) error {
	rep, err := benchreport.ReadFile(inPath)
	if err != nil {
		return err
	}
	pts := rep.Join()
	if summary != nil {
		if err := summary(pts); err != nil {
			return err
		}
	}

	fig, err := benchchart.ParallelPerformance(pts)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	return fig.Save(outPath, dpi)
}

func formatSeries(w io.Writer, pts []benchreport.Point) error {
	var tab texttab.Table
	tab.Row().Cell("threads", texttab.Right).Cell("time (ms)", texttab.Right).Cell("improvement", texttab.Right)
	for _, p := range pts {
		tab.Row()
		tab.Cell(strconv.Itoa(p.Threads), texttab.Right)
		tab.Cell(strconv.Itoa(p.ExecutionTimeMS), texttab.Right)
		tab.Cell(percent(p.ImprovementPercentage), texttab.Right)
	}
	return tab.Format(w)
}

// seriesHTML returns pts as an HTML table with the columns of
// formatSeries.
func seriesHTML(pts []benchreport.Point) *htmltab.Table {
	h := &htmltab.Table{
		Caption: "Parallel performance",
		Index:   "threads",
		Cols:    []string{"time (ms)", "improvement"},
	}
	for _, p := range pts {
		h.Rows = append(h.Rows, htmltab.Row{
			Label: strconv.Itoa(p.Threads),
			Cells: []string{strconv.Itoa(p.ExecutionTimeMS), percent(p.ImprovementPercentage)},
		})
	}
	return h
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
