// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Multi-Run STL vs EASTL Benchmark Results</title>
<style>
table.compbench { border-collapse: collapse; margin-bottom: 0.5em; }
table.compbench td, table.compbench th { padding: 0.2em 0.8em; text-align: right; }
table.compbench td:first-child, table.compbench th:first-child { text-align: left; }
table.compbench caption { text-align: left; font-weight: bold; }
p.note { margin: 0.2em 0; color: #555; }
</style>
</head>
<body>
<h1>Multi-Run STL vs EASTL Benchmark Results</h1>
<dl>
{{- range .Meta}}
<dt>{{index . 0}}</dt><dd>{{index . 1}}</dd>
{{- end}}
</dl>
{{range .Sections -}}
<h2>{{.Title}}</h2>
{{range .Tables -}}
<table class="compbench">
{{- with .Caption}}
<caption>{{.}}</caption>
{{- end}}
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{range .Notes -}}
<p class="note">{{.}}</p>
{{end}}
{{- end}}
{{- end -}}
</body>
</html>
`))

// WriteHTML writes the multi-run summary as an HTML page.
func (m *Multi) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, struct {
		Meta     [][2]string
		Sections []section
	}{m.meta(), m.sections()})
}
