package model

import "fmt"

// Status is the outcome of a single build task.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and aggregation. The String() method and
// text marshalling provide the stable wire representation used in results
// files and rendered reports.
type Status int

const (
	// StatusSuccess indicates the task ran and completed without error.
	StatusSuccess Status = iota

	// StatusFailed indicates the task ran and reported an error.
	StatusFailed

	// StatusSkipped indicates the task did not run, typically because it
	// was up to date or excluded from the build.
	StatusSkipped
)

// String returns the stable textual representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ParseStatus converts a textual status back into a Status.
// It accepts exactly the strings produced by String().
func ParseStatus(s string) (Status, error) {
	switch s {
	case "success":
		return StatusSuccess, nil
	case "failed":
		return StatusFailed, nil
	case "skipped":
		return StatusSkipped, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// MarshalText implements encoding.TextMarshaler so Status serializes as its
// string form in both JSON and YAML.
func (s Status) MarshalText() ([]byte, error) {
	if s != StatusSuccess && s != StatusFailed && s != StatusSkipped {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
