package report

import "errors"

// Sentinel errors for the report package.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each call site. This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrPropertyNotSet is returned by Property.Get when the property has
	// neither an explicit value nor a convention.
	ErrPropertyNotSet = errors.New("property has no value and no convention")

	// ErrPropertyFinalized is returned when setting a property after
	// Finalize has been called on it.
	ErrPropertyFinalized = errors.New("property is finalized and can no longer be set")

	// ErrDuplicateReport is returned when adding a report to a container
	// that already holds a report with the same name.
	ErrDuplicateReport = errors.New("report with this name already exists in container")

	// ErrInvalidPattern is returned when an enable pattern cannot be
	// compiled as a glob expression.
	ErrInvalidPattern = errors.New("invalid enable pattern")

	// ErrUnknownOutputType is returned when parsing a string that is
	// neither "file" nor "directory".
	ErrUnknownOutputType = errors.New("unknown output type")
)
