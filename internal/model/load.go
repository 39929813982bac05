package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a results file.
type Format string

const (
	// FormatAuto sniffs the format from the file extension.
	FormatAuto Format = ""

	// FormatJSON forces JSON parsing regardless of extension.
	FormatJSON Format = "json"

	// FormatYAML forces YAML parsing regardless of extension.
	FormatYAML Format = "yaml"
)

// Load reads, parses, and validates a build results file.
// With FormatAuto the format is derived from the extension: .json parses as
// JSON, .yaml and .yml as YAML, anything else fails with ErrUnknownFormat.
func Load(path string, format Format) (*BuildResult, error) {
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			format = FormatJSON
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided results path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	return Parse(data, format)
}

// Parse parses and validates build results from raw bytes.
func Parse(data []byte, format Format) (*BuildResult, error) {
	var result BuildResult

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to parse JSON results: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to parse YAML results: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build result: %w", err)
	}
	return &result, nil
}
