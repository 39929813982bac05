package report

// Report describes one output artifact a build process may generate.
//
// Tasks that produce reports expose instances of this type for configuration
// before they run, read the configuration while running, and leave the
// instance behind as a record of where output landed.
//
// Compatibility note: Enabled/SetEnabled predate the Required property and
// are kept for callers that still use the boolean form. Both surfaces share
// a single backing store, so they can never disagree: SetEnabled(v) is
// exactly Required().Set(v). Likewise Destination is the eager form of
// OutputLocation and resolves the same provider.
type Report interface {
	// Name returns the symbolic name of this report. The name usually
	// indicates the format (e.g. "json", "html") but can be anything.
	// It is fixed at construction and used as the lookup key within a
	// Container.
	Name() string

	// DisplayName returns a more descriptive name of this report, used
	// when the report is referenced for end users.
	DisplayName() string

	// Required returns the property that determines whether this report
	// should be generated. This is the canonical enablement switch.
	Required() *Property[bool]

	// Enabled reports whether this report should be generated.
	//
	// Deprecated: read Required() instead.
	Enabled() bool

	// SetEnabled sets whether this report should be generated.
	//
	// Deprecated: set Required() instead.
	SetEnabled(enabled bool)

	// OutputLocation returns the property holding the filesystem location
	// the report will be generated to. The value is typically supplied
	// lazily, derived from the tool's base output directory.
	OutputLocation() *Property[string]

	// Destination resolves the output location now and returns it, or ""
	// when no location has been configured.
	//
	// Deprecated: read OutputLocation() instead.
	Destination() string

	// SetDestination pins the output location to a fixed path.
	SetDestination(path string)

	// OutputType returns whether the report writes a single file or a
	// directory tree. It is fixed per report kind. The shape written to
	// the destination must agree with it; the generate runner enforces
	// this after rendering.
	OutputType() OutputType
}

// Namer returns the key under which a report is registered in a Container.
// For every report r, Namer(r) == r.Name().
//
// Design decision: Keeping the naming rule in one function rather than
// calling Name() directly at each registration site means a future change
// to container keying (e.g. case folding) happens in exactly one place.
func Namer(r Report) string {
	return r.Name()
}
