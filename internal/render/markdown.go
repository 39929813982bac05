package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/buildreport/internal/model"
)

// MarkdownRenderer renders the build result as a single Markdown file.
// This format is designed for documentation, pull request comments, and
// sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes the Markdown report to dest.
func (r *MarkdownRenderer) Render(_ context.Context, result *model.BuildResult, dest string) error {
	if err := ensureParentDir(dest); err != nil {
		return err
	}

	f, err := os.Create(dest) //nolint:gosec // Destination comes from report configuration
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Close error after successful Build is not actionable

	md := markdown.NewMarkdown(f)

	r.writeHeader(md, result)
	r.writeSummary(md, result)
	r.writeTasks(md, result)
	r.writeFailures(md, result)

	if err := md.Build(); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return f.Close()
}

// writeHeader writes the report header with build information.
func (r *MarkdownRenderer) writeHeader(md *markdown.Markdown, result *model.BuildResult) {
	md.H1("Build Report")
	md.PlainText("")

	rows := [][]string{
		{"Project", "`" + result.Project + "`"},
		{"Started", result.StartedAt.Format("2006-01-02 15:04:05 MST")},
		{"Duration", result.Duration().Round(time.Millisecond).String()},
		{"Status", r.statusText(result)},
	}
	if result.ToolVersion != "" {
		rows = append(rows, []string{"Tool Version", result.ToolVersion})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// statusText returns the overall status cell for the header table.
func (r *MarkdownRenderer) statusText(result *model.BuildResult) string {
	if result.Failed() {
		return "❌ Failed"
	}
	return "✅ Succeeded"
}

// writeSummary writes the task outcome summary, pie chart, and alert.
func (r *MarkdownRenderer) writeSummary(md *markdown.Markdown, result *model.BuildResult) {
	summary := result.Summary()

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"✅ Succeeded", strconv.Itoa(summary.Succeeded)},
			{"❌ Failed", strconv.Itoa(summary.Failed)},
			{"⏭️ Skipped", strconv.Itoa(summary.Skipped)},
			{"**Total**", "**" + strconv.Itoa(summary.Total) + "**"},
		},
	})
	md.PlainText("")

	if summary.Total > 0 {
		r.writePieChart(md, summary)
	}

	switch {
	case summary.Failed > 0:
		md.Cautionf("%d task(s) failed. See the failure section below.", summary.Failed)
	case summary.Total == 0:
		md.Note("The build ran no tasks.")
	default:
		md.Tip("All executed tasks succeeded.")
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of task outcomes.
func (r *MarkdownRenderer) writePieChart(md *markdown.Markdown, summary model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Task Outcomes"),
		piechart.WithShowData(true),
	)

	if summary.Succeeded > 0 {
		chart.LabelAndIntValue("Succeeded", uint64(summary.Succeeded))
	}
	if summary.Failed > 0 {
		chart.LabelAndIntValue("Failed", uint64(summary.Failed))
	}
	if summary.Skipped > 0 {
		chart.LabelAndIntValue("Skipped", uint64(summary.Skipped))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeTasks writes the per-task table in execution order.
func (r *MarkdownRenderer) writeTasks(md *markdown.Markdown, result *model.BuildResult) {
	md.H2("Tasks")
	md.PlainText("")

	if len(result.Tasks) == 0 {
		md.PlainText("No tasks were executed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		rows = append(rows, []string{
			"`" + task.Name + "`",
			task.Status.String(),
			task.Duration.Round(time.Millisecond).String(),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Task", "Status", "Duration"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFailures writes a detail section per failed task.
func (r *MarkdownRenderer) writeFailures(md *markdown.Markdown, result *model.BuildResult) {
	failed := result.FailedTasks()
	if len(failed) == 0 {
		return
	}

	md.H2("Failures")
	md.PlainText("")

	for _, task := range failed {
		md.H3(task.Name)
		md.PlainText("")
		if task.Error != "" {
			md.PlainText(task.Error)
			md.PlainText("")
		}
		if len(task.Output) > 0 {
			md.CodeBlocks(markdown.SyntaxHighlightText, strings.Join(task.Output, "\n"))
			md.PlainText("")
		}
	}
}
