package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultOutputDir is where reports land when no directory is
	// configured. Relative to the working directory, matching where
	// build tools conventionally emit their output.
	DefaultOutputDir = "reports"

	// DefaultConcurrency of 4 concurrent renders is plenty: the built-in
	// report set is small and rendering is I/O-bound. Larger report sets
	// can raise this via the --concurrency flag.
	DefaultConcurrency = 4

	// DefaultProject is used when neither the results file nor the CLI
	// names the project. Kept empty so the results file value wins.
	DefaultProject = ""

	// AppName is the application name used for XDG directory paths.
	AppName = "buildreport"
)

// Config holds all configuration options for buildreport.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
type Config struct {
	// ResultsFile is the path to the build results file to render
	// reports from.
	ResultsFile string

	// Format overrides results format sniffing. Empty means derive the
	// format from the file extension; "json" and "yaml" force a parser.
	Format string

	// OutputDir is the base directory reports are rendered into.
	// Individual reports may still pin their own destinations.
	OutputDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .buildreport in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// EnablePatterns are glob patterns selecting which reports to
	// generate ("*", "!markdown", "h*"). Empty means the container's
	// own enablement stands.
	EnablePatterns []string

	// Concurrency is the maximum number of reports rendered at once.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// SaveHistory controls whether generated artifacts are recorded in
	// the history database.
	SaveHistory bool

	// HistoryDir is the directory holding the history database.
	// Defaults to the XDG data directory.
	HistoryDir string

	// Project overrides the project name from the results file in
	// rendered reports and history records.
	Project string

	// Reports holds per-report configurations loaded from the config
	// file. Populated by LoadConfigFile.
	Reports *File
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
func NewConfig() *Config {
	return &Config{
		OutputDir:   DefaultOutputDir,
		Concurrency: DefaultConcurrency,
		Project:     DefaultProject,
		SaveHistory: true,
		HistoryDir:  XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for buildreport.
// On Linux: ~/.local/share/buildreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for buildreport.
// On Linux: ~/.config/buildreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for buildreport.
// On Linux: ~/.cache/buildreport
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.ResultsFile == "" {
		return ErrNoResultsFile
	}

	if c.Format != "" && c.Format != "json" && c.Format != "yaml" {
		return ErrInvalidFormat
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}
