package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewListCmd tests the list command creation.
func TestNewListCmd(t *testing.T) {
	t.Parallel()

	cmd := NewListCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "list" {
			t.Errorf("expected use 'list', got %q", cmd.Use)
		}
	})

	t.Run("has enable flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("enable") == nil {
			t.Fatal("expected enable flag")
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("config") == nil {
			t.Fatal("expected config flag")
		}
	})
}

// TestRunListCmd tests the list command execution.
func TestRunListCmd(t *testing.T) {
	t.Run("lists built-in reports", func(t *testing.T) {
		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"list"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, name := range []string{"json", "markdown", "html"} {
			if !strings.Contains(output, name) {
				t.Errorf("expected report %q in listing, got %q", name, output)
			}
		}
	})

	t.Run("reflects enable patterns", func(t *testing.T) {
		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"list", "-e", "json"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// All three reports stay listed; only enablement changes.
		output := buf.String()
		if !strings.Contains(output, "markdown") {
			t.Errorf("expected disabled report to stay listed, got %q", output)
		}
		if !strings.Contains(output, "no") {
			t.Errorf("expected a disabled report in listing, got %q", output)
		}
	})

	t.Run("fails for explicit missing config file", func(t *testing.T) {
		tmpDir := t.TempDir()

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"list", "-c", filepath.Join(tmpDir, "nope.yaml")})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
		if !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("expected config not found error, got %v", err)
		}
	})

	t.Run("applies config file settings", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")
		configYAML := `reports:
  json:
    destination: custom/summary.json
`
		if err := os.WriteFile(configPath, []byte(configYAML), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"list", "-c", configPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "custom/summary.json") {
			t.Errorf("expected configured destination in listing, got %q", buf.String())
		}
	})
}
