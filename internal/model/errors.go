package model

import "errors"

// Validation and parse errors for build results.
//
// Design decision: Package-level sentinel errors allow callers to use
// errors.Is() while still providing human-readable messages.
var (
	// ErrUnknownStatus is returned when parsing a task status that is not
	// one of "success", "failed", or "skipped".
	ErrUnknownStatus = errors.New("unknown task status")

	// ErrUnknownFormat is returned when a results file has an extension
	// that is neither JSON nor YAML and no explicit format was given.
	ErrUnknownFormat = errors.New("unknown results format (expected .json, .yaml, or .yml)")

	// ErrNoProject is returned when a results file carries no project name.
	ErrNoProject = errors.New("build result has no project name")

	// ErrEmptyTaskName is returned when a task entry has an empty name.
	ErrEmptyTaskName = errors.New("task has empty name")

	// ErrDuplicateTaskName is returned when two tasks share a name.
	// Task names key per-task sections in rendered reports.
	ErrDuplicateTaskName = errors.New("duplicate task name")

	// ErrInvalidTimeRange is returned when a build finishes before it starts.
	ErrInvalidTimeRange = errors.New("build finished before it started")
)
