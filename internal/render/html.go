package render

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/buildreport/internal/model"
)

// HTMLRenderer renders the build result as a directory containing a
// self-contained HTML page plus its stylesheet. This is the one built-in
// directory-shaped report.
//
// Design decision: We render with html/template from the standard library.
// The template is small, fully static, and benefits from the package's
// contextual auto-escaping; a template engine dependency would buy nothing
// here.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// htmlPage is the data handed to the index template.
type htmlPage struct {
	Result      *model.BuildResult
	Summary     model.Summary
	GeneratedAt time.Time
}

// Duration formats the wall-clock build duration for display.
func (p htmlPage) Duration() string {
	return p.Result.Duration().Round(time.Millisecond).String()
}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"round": func(d time.Duration) string { return d.Round(time.Millisecond).String() },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Build Report — {{.Result.Project}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<h1>Build Report</h1>
<table class="meta">
<tr><th>Project</th><td>{{.Result.Project}}</td></tr>
<tr><th>Started</th><td>{{.Result.StartedAt.Format "2006-01-02 15:04:05 MST"}}</td></tr>
<tr><th>Duration</th><td>{{.Duration}}</td></tr>
{{if .Result.ToolVersion}}<tr><th>Tool version</th><td>{{.Result.ToolVersion}}</td></tr>{{end}}
</table>
<h2>Summary</h2>
<p>
<span class="count success">{{.Summary.Succeeded}} succeeded</span>
<span class="count failed">{{.Summary.Failed}} failed</span>
<span class="count skipped">{{.Summary.Skipped}} skipped</span>
</p>
<h2>Tasks</h2>
<table class="tasks">
<tr><th>Task</th><th>Status</th><th>Duration</th></tr>
{{range .Result.Tasks}}<tr class="{{.Status}}"><td>{{.Name}}</td><td>{{.Status}}</td><td>{{round .Duration}}</td></tr>
{{end}}</table>
{{if .Result.FailedTasks}}<h2>Failures</h2>
{{range .Result.FailedTasks}}<section class="failure">
<h3>{{.Name}}</h3>
{{if .Error}}<p>{{.Error}}</p>{{end}}
{{if .Output}}<pre>{{range .Output}}{{.}}
{{end}}</pre>{{end}}
</section>
{{end}}{{end}}<footer>Generated at {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</footer>
</body>
</html>
`))

// stylesheet is written next to index.html so the page renders without
// network access.
const stylesheet = `body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
tr.failed td { background: #fdd; }
tr.skipped td { color: #888; }
.count.success { color: #080; }
.count.failed { color: #a00; }
.count.skipped { color: #888; }
section.failure pre { background: #f5f5f5; padding: 0.5rem; overflow-x: auto; }
footer { margin-top: 2rem; color: #888; font-size: 0.8rem; }
`

// Render writes index.html and style.css into the dest directory.
func (r *HTMLRenderer) Render(_ context.Context, result *model.BuildResult, dest string) error {
	if err := os.MkdirAll(dest, 0750); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	page := htmlPage{
		Result:      result,
		Summary:     result.Summary(),
		GeneratedAt: time.Now(),
	}

	indexPath := filepath.Join(dest, "index.html")
	f, err := os.Create(indexPath) //nolint:gosec // Destination comes from report configuration
	if err != nil {
		return fmt.Errorf("failed to create index.html: %w", err)
	}

	if err := indexTemplate.Execute(f, page); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write index.html: %w", err)
	}

	stylePath := filepath.Join(dest, "style.css")
	if err := os.WriteFile(stylePath, []byte(stylesheet), 0600); err != nil {
		return fmt.Errorf("failed to write style.css: %w", err)
	}
	return nil
}
