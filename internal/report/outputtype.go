package report

import "fmt"

// OutputType classifies the shape of a report's output on the filesystem.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method and text marshalling
// provide the stable wire representation ("file" / "directory") used in
// config files, the history database, and rendered manifests.
type OutputType int

const (
	// OutputTypeFile indicates the report writes a single file.
	// The report's destination points to that file.
	OutputTypeFile OutputType = iota

	// OutputTypeDirectory indicates the report writes files into a
	// directory. The report's destination points to that directory.
	OutputTypeDirectory
)

// String returns the stable textual representation of the output type.
func (t OutputType) String() string {
	switch t {
	case OutputTypeFile:
		return "file"
	case OutputTypeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// ParseOutputType converts a textual output type back into an OutputType.
// It accepts exactly the strings produced by String().
func ParseOutputType(s string) (OutputType, error) {
	switch s {
	case "file":
		return OutputTypeFile, nil
	case "directory":
		return OutputTypeDirectory, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOutputType, s)
	}
}

// MarshalText implements encoding.TextMarshaler so OutputType serializes as
// its string form in both JSON and YAML.
func (t OutputType) MarshalText() ([]byte, error) {
	if t != OutputTypeFile && t != OutputTypeDirectory {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutputType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *OutputType) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
