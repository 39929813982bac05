package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/buildreport/internal/report"
)

const configYAML = `output_dir: build/reports
enable:
  - "*"
  - "!markdown"
reports:
  json:
    destination: artifacts/summary.json
  html:
    enabled: false
`

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoadConfigFile tests YAML config parsing.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("parses all sections", func(t *testing.T) {
		t.Parallel()

		f, err := LoadConfigFile(writeConfig(t, configYAML))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if f.OutputDir != "build/reports" {
			t.Errorf("expected output dir override, got %q", f.OutputDir)
		}
		if len(f.Enable) != 2 {
			t.Errorf("expected 2 enable patterns, got %d", len(f.Enable))
		}
		if f.Reports["json"].Destination != "artifacts/summary.json" {
			t.Errorf("unexpected json destination: %q", f.Reports["json"].Destination)
		}
		if rc := f.Reports["html"]; rc.Enabled == nil || *rc.Enabled {
			t.Error("expected html to be disabled")
		}
	})

	t.Run("missing file yields ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "absent")
		if _, err := LoadConfigFile(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfigFile(writeConfig(t, "reports: [not a map")); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("empty file yields usable config", func(t *testing.T) {
		t.Parallel()

		f, err := LoadConfigFile(writeConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Reports == nil {
			t.Error("expected reports map to be initialized")
		}
	})
}

// TestGetReportConfig tests merging of defaults with per-report settings.
func TestGetReportConfig(t *testing.T) {
	t.Parallel()

	enabled := true
	disabled := false
	f := &File{
		Defaults: ReportConfig{Enabled: &enabled, Destination: "out/default"},
		Reports: map[string]ReportConfig{
			"html": {Enabled: &disabled},
		},
	}

	t.Run("specific settings override defaults", func(t *testing.T) {
		t.Parallel()

		rc := f.GetReportConfig("html")
		if rc.Enabled == nil || *rc.Enabled {
			t.Error("expected html override to win over defaults")
		}
		if rc.Destination != "out/default" {
			t.Errorf("expected unset fields to fall back to defaults, got %q", rc.Destination)
		}
	})

	t.Run("unknown report gets defaults", func(t *testing.T) {
		t.Parallel()

		rc := f.GetReportConfig("pdf")
		if rc.Enabled == nil || !*rc.Enabled {
			t.Error("expected defaults for unknown report")
		}
	})
}

// TestFileApplyTo tests applying file settings onto a container.
func TestFileApplyTo(t *testing.T) {
	t.Parallel()

	f, err := LoadConfigFile(writeConfig(t, configYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	container, err := report.NewContainer(
		report.NewFileReport("json"),
		report.NewFileReport("markdown"),
		report.NewDirectoryReport("html"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.ApplyTo(container); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Enable patterns disable markdown; the per-report section disables
	// html on top of that; json survives with a pinned destination.
	jsonReport, _ := container.Get("json")
	if !jsonReport.Enabled() {
		t.Error("expected json to stay enabled")
	}
	if jsonReport.Destination() != "artifacts/summary.json" {
		t.Errorf("expected pinned destination, got %q", jsonReport.Destination())
	}

	markdownReport, _ := container.Get("markdown")
	if markdownReport.Enabled() {
		t.Error("expected markdown to be disabled by pattern")
	}

	htmlReport, _ := container.Get("html")
	if htmlReport.Enabled() {
		t.Error("expected html to be disabled by report section")
	}
}

// TestFindConfigFile tests the config search order.
func TestFindConfigFile(t *testing.T) {
	// Not parallel: chdir affects the whole process.
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte(""), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Run("explicit path wins", func(t *testing.T) {
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("missing explicit path yields empty", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(dir, "absent")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})

	t.Run("current directory is searched", func(t *testing.T) {
		t.Chdir(dir)
		if got := FindConfigFile(""); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})
}
