package generate

import "errors"

// Execution errors surfaced in per-report records.
//
// Design decision: Package-level sentinel errors allow callers to use
// errors.Is() on a record's Err while still providing human-readable
// messages.
var (
	// ErrNoRenderer is returned for an enabled report that has no
	// renderer registered under its name.
	ErrNoRenderer = errors.New("no renderer registered for report")

	// ErrNoDestination is returned when a report's output location
	// cannot be resolved at the start of a run.
	ErrNoDestination = errors.New("report has no resolvable output location")

	// ErrOutputShapeMismatch is returned when the artifact written to a
	// report's destination does not match its declared output type
	// (a file-typed report produced a directory, or vice versa).
	ErrOutputShapeMismatch = errors.New("output shape does not match declared output type")
)
