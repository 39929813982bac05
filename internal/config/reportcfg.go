package config

import "github.com/nao1215/buildreport/internal/report"

// ReportConfig holds per-report configuration from the config file.
// Only set fields are applied; a nil Enabled leaves the report's own
// enablement untouched.
type ReportConfig struct {
	// Enabled toggles whether this report is generated.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Destination pins the report output to a fixed path, overriding the
	// location derived from the output directory.
	Destination string `yaml:"destination,omitempty"`

	// DisplayName is informational only. Display names are fixed at
	// report construction, so this value documents intent in the config
	// file but is not applied to an existing report.
	DisplayName string `yaml:"display_name,omitempty"`
}

// File represents the structure of the .buildreport configuration file.
type File struct {
	// OutputDir overrides the base output directory.
	// The CLI flag still wins over this value.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Enable holds glob patterns selecting which reports to generate,
	// applied before the per-report enabled flags.
	Enable []string `yaml:"enable,omitempty"`

	// Reports maps report names to their configurations.
	Reports map[string]ReportConfig `yaml:"reports,omitempty"`

	// Defaults contains default report configuration applied to all
	// reports unless overridden in the report-specific configuration.
	Defaults ReportConfig `yaml:"defaults,omitempty"`
}

// GetReportConfig returns the configuration for a report name, merging the
// report-specific configuration with defaults.
func (f *File) GetReportConfig(name string) ReportConfig {
	result := f.Defaults

	if rc, ok := f.Reports[name]; ok {
		if rc.Enabled != nil {
			result.Enabled = rc.Enabled
		}
		if rc.Destination != "" {
			result.Destination = rc.Destination
		}
		if rc.DisplayName != "" {
			result.DisplayName = rc.DisplayName
		}
	}
	return result
}

// ApplyTo applies the file's settings onto a report container: first the
// enable patterns, then per-report enabled flags and destinations.
func (f *File) ApplyTo(container *report.Container) error {
	if err := container.EnablePatterns(f.Enable...); err != nil {
		return err
	}

	container.ConfigureEach(func(r report.Report) {
		rc := f.GetReportConfig(report.Namer(r))
		if rc.Enabled != nil {
			r.SetEnabled(*rc.Enabled)
		}
		if rc.Destination != "" {
			r.SetDestination(rc.Destination)
		}
	})
	return nil
}
