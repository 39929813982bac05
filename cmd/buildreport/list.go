package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/buildreport/internal/config"
	"github.com/nao1215/buildreport/internal/generate"
	"github.com/nao1215/buildreport/internal/report"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available reports and their configuration",
		Long: `List shows the report set as it would run: each report's name, display
name, output shape, whether it is enabled, and where it would be written.

The listing reflects the configuration file and any --enable patterns,
so it can be used to preview what 'buildreport generate' would do.

Examples:
  # Show the default report set
  buildreport list

  # Preview the effect of enable patterns
  buildreport list --enable '*' --enable '!markdown'

  # Preview with a specific configuration file
  buildreport list -c myconfig.yaml`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}

	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Base directory for generated reports")
	cmd.Flags().StringArrayP("enable", "e", nil,
		"Glob pattern selecting reports to generate (repeatable, '!' negates)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .buildreport in current or home directory)")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		return err
	}
	enablePatterns, err := cmd.Flags().GetStringArray("enable")
	if err != nil {
		return err
	}
	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	explicitConfigPath := configFilePath != ""
	configPath := config.FindConfigFile(configFilePath)

	var file *config.File
	if configPath != "" {
		file, err = config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return fmt.Errorf("configuration file not found: %s", configFilePath)
	}

	if file != nil && file.OutputDir != "" && !cmd.Flags().Changed("output-dir") {
		outputDir = file.OutputDir
	}

	container, _, err := generate.DefaultSet(outputDir)
	if err != nil {
		return fmt.Errorf("failed to build report set: %w", err)
	}

	if file != nil {
		if err := file.ApplyTo(container); err != nil {
			return fmt.Errorf("failed to apply config file: %w", err)
		}
	}
	if len(enablePatterns) > 0 {
		if err := container.EnablePatterns(enablePatterns...); err != nil {
			return fmt.Errorf("invalid --enable pattern: %w", err)
		}
	}

	printReports(cmd, container)
	return nil
}

// printReports prints the container's reports in registration order.
func printReports(cmd *cobra.Command, container *report.Container) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Reports (%d):\n\n", container.Len())
	fmt.Fprintf(out, "  %-10s  %-18s  %-9s  %-8s  %s\n",
		"Name", "Display Name", "Shape", "Enabled", "Destination")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 70))

	for _, rep := range container.All() {
		enabled := "no"
		if rep.Required().OrElse(false) {
			enabled = "yes"
		}

		dest, err := rep.OutputLocation().Get()
		if err != nil {
			dest = "(unset)"
		}

		fmt.Fprintf(out, "  %-10s  %-18s  %-9s  %-8s  %s\n",
			rep.Name(),
			rep.DisplayName(),
			rep.OutputType().String(),
			enabled,
			dest,
		)
	}
}
