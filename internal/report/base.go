package report

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// base carries the state shared by all report kinds.
//
// Design decision: Concrete report types embed base rather than
// reimplementing the accessors so that the enabled/required and
// destination/outputLocation compatibility pairs are collapsed onto a
// single backing store in exactly one place.
type base struct {
	name        string
	displayName string
	required    *Property[bool]
	output      *Property[string]
	outputType  OutputType
}

// Option configures a report during construction.
type Option func(*base)

// WithDisplayName sets the human-readable label of the report.
// When omitted, the display name is a title-cased rendering of the name.
func WithDisplayName(displayName string) Option {
	return func(b *base) {
		b.displayName = displayName
	}
}

// WithEnabled sets the initial enablement of the report.
// This installs an explicit value, overriding the enabled-by-default
// convention.
func WithEnabled(enabled bool) Option {
	return func(b *base) {
		// Set cannot fail here; nothing finalizes during construction.
		_ = b.required.Set(enabled)
	}
}

// WithDestination pins the report's output location to a fixed path.
func WithDestination(path string) Option {
	return func(b *base) {
		_ = b.output.Set(path)
	}
}

// titleCaser renders default display names from symbolic names.
// English casing rules are fine for ASCII report names like "json".
var titleCaser = cases.Title(language.English)

func newBase(name string, outputType OutputType, opts ...Option) base {
	b := base{
		name:       name,
		required:   NewProperty[bool]().Convention(true),
		output:     NewProperty[string](),
		outputType: outputType,
	}

	for _, opt := range opts {
		opt(&b)
	}

	if b.displayName == "" {
		b.displayName = titleCaser.String(name)
	}

	return b
}

// Name returns the symbolic name of the report.
func (b *base) Name() string { return b.name }

// DisplayName returns the human-readable label of the report.
func (b *base) DisplayName() string { return b.displayName }

// Required returns the enablement property.
func (b *base) Required() *Property[bool] { return b.required }

// Enabled reports whether the report should be generated.
//
// Deprecated: read Required() instead.
func (b *base) Enabled() bool { return b.required.OrElse(false) }

// SetEnabled sets whether the report should be generated.
//
// Deprecated: set Required() instead.
func (b *base) SetEnabled(enabled bool) { _ = b.required.Set(enabled) }

// OutputLocation returns the output location property.
func (b *base) OutputLocation() *Property[string] { return b.output }

// Destination resolves the output location now, or "" when unset.
//
// Deprecated: read OutputLocation() instead.
func (b *base) Destination() string { return b.output.OrElse("") }

// SetDestination pins the output location to a fixed path.
func (b *base) SetDestination(path string) { _ = b.output.Set(path) }

// OutputType returns the declared output shape of the report.
func (b *base) OutputType() OutputType { return b.outputType }

// FileReport is a report whose output is a single file.
type FileReport struct {
	base
}

// NewFileReport creates a report that writes a single file.
func NewFileReport(name string, opts ...Option) *FileReport {
	return &FileReport{base: newBase(name, OutputTypeFile, opts...)}
}

// DirectoryReport is a report whose output is a directory tree.
type DirectoryReport struct {
	base
}

// NewDirectoryReport creates a report that writes files into a directory.
func NewDirectoryReport(name string, opts ...Option) *DirectoryReport {
	return &DirectoryReport{base: newBase(name, OutputTypeDirectory, opts...)}
}

// Interface conformance checks.
var (
	_ Report = (*FileReport)(nil)
	_ Report = (*DirectoryReport)(nil)
)
