package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nao1215/buildreport/internal/model"
)

// JSONRenderer renders the build result as a single JSON file.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONRenderer struct {
	// indentPrefix and indentString control pretty printing.
	indentPrefix string
	indentString string
}

// JSONOption configures a JSONRenderer.
type JSONOption func(*JSONRenderer)

// WithIndent overrides the indentation used for the JSON document.
func WithIndent(prefix, indent string) JSONOption {
	return func(r *JSONRenderer) {
		r.indentPrefix = prefix
		r.indentString = indent
	}
}

// NewJSONRenderer creates a JSONRenderer.
// Output is pretty-printed with two-space indentation by default.
func NewJSONRenderer(opts ...JSONOption) *JSONRenderer {
	r := &JSONRenderer{
		indentPrefix: "",
		indentString: "  ",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// jsonDocument is the shape of the rendered JSON file: the summary first so
// humans skimming the file see the counts, then the full result.
type jsonDocument struct {
	Summary model.Summary      `json:"summary"`
	Result  *model.BuildResult `json:"result"`
}

// Render writes the JSON report to dest.
func (r *JSONRenderer) Render(_ context.Context, result *model.BuildResult, dest string) error {
	doc := jsonDocument{
		Summary: result.Summary(),
		Result:  result,
	}

	data, err := json.MarshalIndent(doc, r.indentPrefix, r.indentString)
	if err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	// Trailing newline so the file is friendly to line-oriented tools.
	data = append(data, '\n')

	return writeFile(dest, data)
}
