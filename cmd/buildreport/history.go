package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/buildreport/internal/config"
	"github.com/nao1215/buildreport/internal/history"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously generated reports",
		Long: `History lists past generation runs and the artifacts they produced.

Each 'buildreport generate' run records its successful reports in a
local SQLite database, including where each artifact was written and
its content digest. This command inspects those records.

Examples:
  # List recent generation runs
  buildreport history

  # List the last three runs
  buildreport history --limit 3

  # Show the artifacts of a specific run
  buildreport history --generation 5

  # Show where the html report was last written
  buildreport history --report html`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", 10,
		"Maximum number of generation runs to list (0 means no limit)")
	cmd.Flags().Int64P("generation", "g", 0,
		"Show the artifacts of the generation run with this ID")
	cmd.Flags().StringP("report", "r", "",
		"Show the most recent artifact of the named report")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	generationID, err := cmd.Flags().GetInt64("generation")
	if err != nil {
		return err
	}
	reportName, err := cmd.Flags().GetString("report")
	if err != nil {
		return err
	}

	// Opening read-only keeps 'history' from creating an empty database
	// when nothing was ever generated.
	store, err := history.Open(config.XDGDataDir(), history.Options{})
	if err != nil {
		return fmt.Errorf("no generation history found (run 'buildreport generate' first): %w", err)
	}
	defer store.Close() //nolint:errcheck // Read-only access

	ctx := context.Background()

	if reportName != "" {
		return showLatestArtifact(ctx, cmd, store, reportName)
	}
	if generationID > 0 {
		return showGeneration(ctx, cmd, store, generationID)
	}
	return listGenerations(ctx, cmd, store, limit)
}

// listGenerations lists recent generation runs, newest first.
func listGenerations(ctx context.Context, cmd *cobra.Command, store *history.Store, limit int) error {
	generations, err := store.ListGenerations(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list generations: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(generations) == 0 {
		fmt.Fprintln(out, "No generation history found.")
		fmt.Fprintln(out, "\nUse 'buildreport generate <results-file>' to generate reports.")
		return nil
	}

	fmt.Fprintf(out, "Generation history (%d run(s)):\n\n", len(generations))
	fmt.Fprintf(out, "  %-6s  %-20s  %s\n", "ID", "Date", "Project")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 50))
	for _, g := range generations {
		fmt.Fprintf(out, "  %-6d  %-20s  %s\n",
			g.ID,
			g.GeneratedAt.Format("2006-01-02 15:04:05"),
			g.Project,
		)
	}
	fmt.Fprintln(out, "\nUse 'buildreport history --generation <id>' to see a run's artifacts.")

	return nil
}

// showGeneration lists the artifacts of one generation run.
func showGeneration(ctx context.Context, cmd *cobra.Command, store *history.Store, generationID int64) error {
	artifacts, err := store.ArtifactsFor(ctx, generationID)
	if err != nil {
		return fmt.Errorf("failed to get artifacts: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(artifacts) == 0 {
		fmt.Fprintf(out, "No artifacts found for generation %d.\n", generationID)
		return nil
	}

	fmt.Fprintf(out, "Artifacts of generation %d (%d):\n\n", generationID, len(artifacts))
	fmt.Fprintf(out, "  %-10s  %-9s  %-10s  %s\n", "Report", "Shape", "Size", "Destination")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 60))
	for _, a := range artifacts {
		fmt.Fprintf(out, "  %-10s  %-9s  %-10s  %s\n",
			a.ReportName,
			a.OutputType,
			formatSize(a.SizeBytes),
			a.Destination,
		)
	}

	return nil
}

// showLatestArtifact prints the most recent artifact of the named report.
func showLatestArtifact(ctx context.Context, cmd *cobra.Command, store *history.Store, reportName string) error {
	artifact, err := store.LatestArtifact(ctx, reportName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Report:      %s\n", artifact.ReportName)
	fmt.Fprintf(out, "Generation:  %d\n", artifact.GenerationID)
	fmt.Fprintf(out, "Shape:       %s\n", artifact.OutputType)
	fmt.Fprintf(out, "Destination: %s\n", artifact.Destination)
	fmt.Fprintf(out, "Size:        %s\n", formatSize(artifact.SizeBytes))
	fmt.Fprintf(out, "Digest:      %s\n", artifact.Digest)

	return nil
}

// formatSize formats a byte count for display.
func formatSize(bytes int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
	)
	switch {
	case bytes >= mib:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/float64(mib))
	case bytes >= kib:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/float64(kib))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
