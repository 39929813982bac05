package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PathHandler is a slog.Handler wrapper that rewrites absolute paths under
// the user's home directory to the "~/..." form in attribute values.
//
// Design decision: the handler wraps any slog.Handler rather than extending
// a specific one. This lets callers choose text, JSON, or a custom handler
// for formatting while the path rewriting stays in one place. Only string
// attribute values are rewritten; message text is left untouched because
// messages are static strings in this codebase and paths travel as
// attributes.
type PathHandler struct {
	handler slog.Handler
	home    string
}

// NewPathHandler creates a new PathHandler wrapping the given handler.
// If the home directory cannot be determined, rewriting is disabled and
// records pass through unchanged.
func NewPathHandler(handler slog.Handler) *PathHandler {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &PathHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites home-relative paths in the record's attributes and
// delegates to the wrapped handler.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	newRecord := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(h.rewriteAttr(attr))
		return true
	})
	return h.handler.Handle(ctx, newRecord)
}

// WithAttrs returns a new PathHandler with the given attributes rewritten
// and added to the wrapped handler.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		rewritten = append(rewritten, h.rewriteAttr(attr))
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new PathHandler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute value. Group attributes are
// rewritten recursively.
func (h *PathHandler) rewriteAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindGroup {
		groupAttrs := attr.Value.Group()
		rewritten := make([]slog.Attr, 0, len(groupAttrs))
		for _, a := range groupAttrs {
			rewritten = append(rewritten, h.rewriteAttr(a))
		}
		return slog.Attr{Key: attr.Key, Value: slog.GroupValue(rewritten...)}
	}
	if attr.Value.Kind() != slog.KindString {
		return attr
	}
	return slog.String(attr.Key, h.rewritePath(attr.Value.String()))
}

// rewritePath replaces a leading home directory with "~". Values that are
// not under the home directory are returned unchanged.
func (h *PathHandler) rewritePath(value string) string {
	if h.home == "" || value == "" {
		return value
	}
	if value == h.home {
		return "~"
	}
	prefix := h.home + string(filepath.Separator)
	if strings.HasPrefix(value, prefix) {
		return "~" + string(filepath.Separator) + value[len(prefix):]
	}
	return value
}

// NewLogger creates a slog.Logger writing to w with home directory paths
// rewritten. When verbose is true the level is lowered from warn to debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	base := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewPathHandler(base))
}
