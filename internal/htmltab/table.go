// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmltab renders labeled tables as standalone HTML pages.
package htmltab

import (
	"io"

	"github.com/google/safehtml/template"
)

// A Table is a grid of preformatted cells with a label column.
type Table struct {
	// Caption is shown above the table. It may be empty.
	Caption string

	// Index heads the label column and Cols head the value columns.
	Index string
	Cols  []string

	Rows []Row

	// Note is printed below the table. It may be empty.
	Note string
}

// A Row is one labeled line of a Table.
type Row struct {
	Label string
	Cells []string
}

const pageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<style>
.benchviz { border-collapse: collapse; font-family: sans-serif; }
.benchviz th, .benchviz td { padding: 0.1em 0.6em; text-align: right; }
.benchviz .label { text-align: left; }
.benchviz thead th { border-bottom: 1px solid #888; }
</style>
</head>
<body>
<table class='benchviz'>
{{with .Caption}}<caption>{{.}}</caption>
{{end -}}
<thead>
<tr><th class='label'>{{.Index}}{{range .Cols}}<th>{{.}}{{end}}
</thead>
<tbody>
{{range .Rows -}}
<tr><td class='label'>{{.Label}}{{range .Cells}}<td>{{.}}{{end}}
{{end -}}
</tbody>
</table>
{{with .Note}}<p>{{.}}</p>
{{end -}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// Write writes t to w as an HTML page. All text is escaped.
func Write(w io.Writer, t *Table) error {
	return pageTemplate.Execute(w, t)
}
