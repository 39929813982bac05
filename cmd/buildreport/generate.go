package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/buildreport/internal/config"
	"github.com/nao1215/buildreport/internal/generate"
	"github.com/nao1215/buildreport/internal/history"
	"github.com/nao1215/buildreport/internal/log"
	"github.com/nao1215/buildreport/internal/model"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <results-file>",
		Short: "Generate reports from a build results file",
		Long: `Generate renders the enabled reports from a build results file.

The results file holds the outcome of each task in a build run, in JSON
or YAML. Reports render concurrently; one report's failure does not stop
the others.

Examples:
  # Generate all enabled reports into ./reports
  buildreport generate results.json

  # Write reports into a different directory
  buildreport generate -o build/reports results.json

  # Generate everything except the markdown report
  buildreport generate --enable '*' --enable '!markdown' results.json

  # Only the html report
  buildreport generate --enable html results.json

  # Use a custom configuration file
  buildreport generate -c myconfig.yaml results.yaml

Configuration file (.buildreport) example:
  output_dir: build/reports
  enable:
    - "*"
    - "!markdown"
  reports:
    json:
      destination: build/summary.json
    html:
      enabled: false`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerateCmd,
	}

	// Input flags
	cmd.Flags().StringP("format", "F", "",
		"Results file format: json or yaml (default: derive from extension)")
	cmd.Flags().StringP("project", "p", "",
		"Override the project name from the results file")

	// Output flags
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Base directory for generated reports")
	cmd.Flags().StringArrayP("enable", "e", nil,
		"Glob pattern selecting reports to generate (repeatable, '!' negates)")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Maximum number of reports rendered at once")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .buildreport in current or home directory)")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record generated artifacts in the history database")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	cfg.Verbose = getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runGenerate(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.ResultsFile = args[0]

	var err error

	cfg.Format, err = cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	cfg.Project, err = cmd.Flags().GetString("project")
	if err != nil {
		return nil, err
	}

	cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
	if err != nil {
		return nil, err
	}

	cfg.EnablePatterns, err = cmd.Flags().GetStringArray("enable")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory

	// Load report configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue without one.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Reports, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// The config file's output directory applies only when the flag was
	// left at its default; an explicit flag wins.
	if cfg.Reports != nil && cfg.Reports.OutputDir != "" && !cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = cfg.Reports.OutputDir
	}

	return cfg, nil
}

// runGenerate loads the results file, renders the enabled reports, and
// records the outcome in history.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	result, err := model.Load(cfg.ResultsFile, model.Format(cfg.Format))
	if err != nil {
		return fmt.Errorf("failed to load results file %s: %w", cfg.ResultsFile, err)
	}
	if cfg.Project != "" {
		result.Project = cfg.Project
	}

	logger.Info("starting generation",
		"results_file", cfg.ResultsFile,
		"project", result.Project,
		"output_dir", cfg.OutputDir,
		"concurrency", cfg.Concurrency,
	)

	container, renderers, err := generate.DefaultSet(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to build report set: %w", err)
	}

	// Config file first, CLI patterns second so the command line wins.
	if cfg.Reports != nil {
		if err := cfg.Reports.ApplyTo(container); err != nil {
			return fmt.Errorf("failed to apply config file: %w", err)
		}
	}
	if len(cfg.EnablePatterns) > 0 {
		if err := container.EnablePatterns(cfg.EnablePatterns...); err != nil {
			return fmt.Errorf("invalid --enable pattern: %w", err)
		}
	}

	if len(container.Enabled()) == 0 {
		fmt.Println("No reports enabled; nothing to generate.")
		return nil
	}

	runner := generate.NewRunner(container, renderers,
		generate.WithConcurrency(cfg.Concurrency),
		generate.WithLogger(logger),
	)

	startTime := time.Now()
	outcome, runErr := runner.Run(ctx, result)
	if outcome == nil {
		// The run aborted before producing records (cancellation).
		return runErr
	}

	printOutcome(outcome, time.Since(startTime))

	if cfg.SaveHistory {
		if err := saveOutcome(ctx, cfg, result.Project, outcome, logger); err != nil {
			logger.Error("failed to save generation history", "error", err)
		}
	}

	return runErr
}

// printOutcome prints a per-report summary table of a generation run.
func printOutcome(outcome *generate.Outcome, elapsed time.Duration) {
	fmt.Printf("Generated %d report(s) in %s:\n\n",
		len(outcome.Records)-len(outcome.Failed()), elapsed.Round(time.Millisecond))

	fmt.Printf("  %-10s  %-8s  %s\n", "Report", "Status", "Destination")
	fmt.Println("  " + strings.Repeat("-", 50))
	for _, rec := range outcome.Records {
		status := "ok"
		detail := rec.Destination
		if rec.Err != nil {
			status = "failed"
			detail = rec.Err.Error()
		}
		fmt.Printf("  %-10s  %-8s  %s\n", rec.ReportName, status, detail)
	}

	if failed := outcome.Failed(); len(failed) > 0 {
		fmt.Printf("\n%d report(s) failed.\n", len(failed))
	}
}

// saveOutcome records the generation in the history database.
// If nothing succeeded there is nothing to record.
func saveOutcome(ctx context.Context, cfg *config.Config, project string, outcome *generate.Outcome, logger *slog.Logger) error {
	if len(outcome.Records) == len(outcome.Failed()) {
		return nil
	}

	store, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close() //nolint:errcheck // Best effort cleanup

	generationID, err := store.SaveOutcome(ctx, project, outcome)
	if err != nil {
		return err
	}
	if generationID > 0 {
		logger.Info("generation recorded", "generation_id", generationID, "dir", cfg.HistoryDir)
	}
	return nil
}
