package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/buildreport/internal/model"
)

// Renderer renders a build result into a destination on the filesystem.
// For single-file reports dest is the file path; for directory reports it
// is the directory the renderer fills.
type Renderer interface {
	// Render writes the report for result to dest.
	// Implementations create missing parent directories themselves.
	Render(ctx context.Context, result *model.BuildResult, dest string) error
}

// ensureParentDir creates the parent directory of a file destination.
func ensureParentDir(dest string) error {
	dir := filepath.Dir(dest)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// writeFile writes data to dest, creating parent directories as needed.
func writeFile(dest string, data []byte) error {
	if err := ensureParentDir(dest); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
