package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoResultsFile is returned when no build results file is specified.
	ErrNoResultsFile = errors.New("no results file specified: pass the build results path as an argument")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// Zero concurrency would mean no reports are rendered at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidFormat is returned when the results format override is
	// neither "json" nor "yaml".
	ErrInvalidFormat = errors.New("invalid results format: must be json or yaml")

	// ErrNoOutputDir is returned when the output directory is empty.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
