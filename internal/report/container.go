package report

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Container is an ordered, name-keyed collection of reports.
//
// Reports are keyed by Namer and kept in insertion order so that rendered
// output and CLI listings are deterministic.
//
// Design decision: We maintain both a slice and a map rather than sorting a
// map's keys on every access. The slice preserves the order reports were
// registered in, which is the order producers declare them and the order
// users expect to see.
type Container struct {
	reports []Report
	index   map[string]Report
}

// NewContainer creates a container holding the given reports.
// It returns ErrDuplicateReport if two reports share a name.
func NewContainer(reports ...Report) (*Container, error) {
	c := &Container{
		index: make(map[string]Report, len(reports)),
	}
	for _, r := range reports {
		if err := c.Add(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers a report under its Namer key.
// It returns ErrDuplicateReport if the name is already taken.
func (c *Container) Add(r Report) error {
	name := Namer(r)
	if _, exists := c.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateReport, name)
	}
	c.index[name] = r
	c.reports = append(c.reports, r)
	return nil
}

// Get returns the report registered under name.
func (c *Container) Get(name string) (Report, bool) {
	r, ok := c.index[name]
	return r, ok
}

// Len returns the number of registered reports.
func (c *Container) Len() int {
	return len(c.reports)
}

// Names returns the report names in insertion order.
func (c *Container) Names() []string {
	names := make([]string, 0, len(c.reports))
	for _, r := range c.reports {
		names = append(names, Namer(r))
	}
	return names
}

// All returns all registered reports in insertion order.
func (c *Container) All() []Report {
	out := make([]Report, len(c.reports))
	copy(out, c.reports)
	return out
}

// Enabled returns the reports whose Required property resolves to true,
// in insertion order.
func (c *Container) Enabled() []Report {
	var out []Report
	for _, r := range c.reports {
		if r.Required().OrElse(false) {
			out = append(out, r)
		}
	}
	return out
}

// ConfigureEach applies fn to every registered report in insertion order.
func (c *Container) ConfigureEach(fn func(Report)) {
	for _, r := range c.reports {
		fn(r)
	}
}

// EnablePatterns enables and disables reports by matching glob patterns
// against report names. A leading '!' negates a pattern. Patterns are
// applied in order, so later patterns win:
//
//	EnablePatterns("*", "!xml")  // everything except xml
//	EnablePatterns("h*")         // only reports starting with "h"
//
// When at least one positive pattern is given, reports matching no positive
// pattern are disabled. An empty pattern list leaves the container
// untouched. Invalid globs are reported with ErrInvalidPattern.
func (c *Container) EnablePatterns(patterns ...string) error {
	if len(patterns) == 0 {
		return nil
	}

	type compiled struct {
		matcher glob.Glob
		negated bool
	}

	rules := make([]compiled, 0, len(patterns))
	positive := false
	for _, p := range patterns {
		negated := strings.HasPrefix(p, "!")
		expr := strings.TrimPrefix(p, "!")
		g, err := glob.Compile(expr)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
		}
		if !negated {
			positive = true
		}
		rules = append(rules, compiled{matcher: g, negated: negated})
	}

	for _, r := range c.reports {
		// With positive patterns present, the baseline flips to
		// disabled and patterns opt reports back in.
		enabled := r.Required().OrElse(false)
		if positive {
			enabled = false
		}
		for _, rule := range rules {
			if rule.matcher.Match(Namer(r)) {
				enabled = !rule.negated
			}
		}
		if err := r.Required().Set(enabled); err != nil {
			return fmt.Errorf("enable %q: %w", Namer(r), err)
		}
	}
	return nil
}
