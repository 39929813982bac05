package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/buildreport/internal/model"
	"github.com/nao1215/buildreport/internal/render"
	"github.com/nao1215/buildreport/internal/report"
)

// Record is the outcome of rendering one report.
type Record struct {
	// ReportName is the symbolic name of the report.
	ReportName string

	// Destination is the resolved path the report was written to.
	Destination string

	// OutputType is the report's declared output shape.
	OutputType report.OutputType

	// Digest is the content digest of the artifact, empty on failure.
	Digest string

	// SizeBytes is the artifact size (for directories, the sum of all
	// regular files), zero on failure.
	SizeBytes int64

	// Duration is how long rendering took.
	Duration time.Duration

	// Err is the rendering or validation failure, nil on success.
	Err error
}

// Outcome is the result of one generation run.
type Outcome struct {
	// Records holds one entry per enabled report, in container order.
	Records []Record
}

// Failed returns the records whose rendering failed.
func (o *Outcome) Failed() []Record {
	var failed []Record
	for _, rec := range o.Records {
		if rec.Err != nil {
			failed = append(failed, rec)
		}
	}
	return failed
}

// Runner renders the enabled reports of a container.
//
// Design decision: Renderers are looked up by report name rather than
// attached to report instances. Reports stay a pure configuration surface
// and the same report definition can be paired with different renderers in
// tests.
type Runner struct {
	container   *report.Container
	renderers   map[string]render.Renderer
	concurrency int
	logger      *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets the maximum number of reports rendered at once.
// Default is 4 if not specified.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for run-level logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner over the given container. The renderers map
// keys renderer implementations by report name.
func NewRunner(container *report.Container, renderers map[string]render.Renderer, opts ...Option) *Runner {
	r := &Runner{
		container:   container,
		renderers:   renderers,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run renders all enabled reports for result.
//
// Reports render concurrently up to the configured limit. One report's
// failure does not stop the others; failures are collected in the outcome
// and joined into the returned error. Context cancellation aborts reports
// that have not started and fails the run.
func (r *Runner) Run(ctx context.Context, result *model.BuildResult) (*Outcome, error) {
	enabled := r.container.Enabled()
	records := make([]Record, len(enabled))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, rep := range enabled {
		g.Go(func() error {
			records[i] = r.renderOne(ctx, rep, result)
			// Rendering errors land in the record; only cancellation
			// stops the group.
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generation aborted: %w", err)
	}

	outcome := &Outcome{Records: records}

	var errs []error
	for _, rec := range outcome.Failed() {
		errs = append(errs, fmt.Errorf("report %q: %w", rec.ReportName, rec.Err))
	}
	return outcome, errors.Join(errs...)
}

// renderOne renders a single report and validates what landed on disk.
func (r *Runner) renderOne(ctx context.Context, rep report.Report, result *model.BuildResult) Record {
	rec := Record{
		ReportName: report.Namer(rep),
		OutputType: rep.OutputType(),
	}

	dest, err := rep.OutputLocation().Get()
	if err != nil {
		rec.Err = fmt.Errorf("%w: %v", ErrNoDestination, err)
		return rec
	}
	rec.Destination = dest

	// The location is locked once rendering starts so the record always
	// matches what was written.
	rep.OutputLocation().Finalize()

	renderer, ok := r.renderers[rec.ReportName]
	if !ok {
		rec.Err = fmt.Errorf("%w: %q", ErrNoRenderer, rec.ReportName)
		return rec
	}

	r.logger.Debug("rendering report",
		"report", rec.ReportName,
		"destination", dest,
		"output_type", rec.OutputType.String(),
	)

	start := time.Now()
	err = renderer.Render(ctx, result, dest)
	rec.Duration = time.Since(start)
	if err != nil {
		rec.Err = err
		return rec
	}

	if err := checkShape(dest, rec.OutputType); err != nil {
		rec.Err = err
		return rec
	}

	rec.Digest, rec.SizeBytes, err = digestArtifact(dest)
	if err != nil {
		rec.Err = err
		return rec
	}

	r.logger.Info("report generated",
		"report", rec.ReportName,
		"destination", dest,
		"size_bytes", rec.SizeBytes,
		"duration", rec.Duration.String(),
	)
	return rec
}

// checkShape verifies that the artifact at dest matches the declared
// output type.
func checkShape(dest string, typ report.OutputType) error {
	info, err := os.Stat(dest)
	if err != nil {
		return fmt.Errorf("failed to stat rendered artifact: %w", err)
	}

	switch typ {
	case report.OutputTypeFile:
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory, expected a file", ErrOutputShapeMismatch, dest)
		}
	case report.OutputTypeDirectory:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is a file, expected a directory", ErrOutputShapeMismatch, dest)
		}
	}
	return nil
}

// DefaultSet builds the container of built-in reports together with their
// renderers. Output locations default to paths under baseDir but stay lazy,
// so reconfiguring a report before the run still wins.
func DefaultSet(baseDir string) (*report.Container, map[string]render.Renderer, error) {
	jsonReport := report.NewFileReport("json", report.WithDisplayName("JSON summary"))
	jsonReport.OutputLocation().ConventionProvider(destProvider(baseDir, "build.json"))

	markdownReport := report.NewFileReport("markdown", report.WithDisplayName("Markdown summary"))
	markdownReport.OutputLocation().ConventionProvider(destProvider(baseDir, "build.md"))

	htmlReport := report.NewDirectoryReport("html", report.WithDisplayName("HTML report"))
	htmlReport.OutputLocation().ConventionProvider(destProvider(baseDir, "html"))

	container, err := report.NewContainer(jsonReport, markdownReport, htmlReport)
	if err != nil {
		return nil, nil, err
	}

	renderers := map[string]render.Renderer{
		"json":     render.NewJSONRenderer(),
		"markdown": render.NewMarkdownRenderer(),
		"html":     render.NewHTMLRenderer(),
	}
	return container, renderers, nil
}

// destProvider derives a destination under the base output directory.
func destProvider(baseDir, name string) report.Provider[string] {
	return report.ProviderFunc(func() (string, error) {
		return filepath.Join(baseDir, name), nil
	})
}
