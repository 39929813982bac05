package report

import (
	"encoding/json"
	"errors"
	"testing"
)

// TestOutputTypeString tests the textual representation of output types.
func TestOutputTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  OutputType
		want string
	}{
		{name: "file", typ: OutputTypeFile, want: "file"},
		{name: "directory", typ: OutputTypeDirectory, want: "directory"},
		{name: "out of range", typ: OutputType(99), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.typ.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestParseOutputType tests round-tripping through the textual form.
func TestParseOutputType(t *testing.T) {
	t.Parallel()

	t.Run("valid values round-trip", func(t *testing.T) {
		t.Parallel()

		for _, typ := range []OutputType{OutputTypeFile, OutputTypeDirectory} {
			got, err := ParseOutputType(typ.String())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != typ {
				t.Errorf("expected %v, got %v", typ, got)
			}
		}
	})

	t.Run("unknown value is rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseOutputType("tree"); !errors.Is(err, ErrUnknownOutputType) {
			t.Errorf("expected ErrUnknownOutputType, got %v", err)
		}
	})
}

// TestOutputTypeJSON tests JSON serialization via TextMarshaler.
func TestOutputTypeJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(OutputTypeDirectory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"directory"` {
		t.Errorf("expected quoted directory, got %s", data)
	}

	var typ OutputType
	if err := json.Unmarshal([]byte(`"file"`), &typ); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ != OutputTypeFile {
		t.Errorf("expected OutputTypeFile, got %v", typ)
	}
}
