// Package main provides the entry point for the buildreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for buildreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildreport",
		Short: "Generate build reports from task results",
		Long: `buildreport renders reports about a build run from a results file of
task outcomes. Reports are configurable: each one can be enabled or
disabled, retargeted to a different destination, and selected in bulk
with glob patterns.

Built-in reports: json (machine-readable summary), markdown (summary
for pull requests and chat), html (browsable report directory).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
