// Package render provides the built-in report renderers.
//
// This package contains renderers for different output formats:
//   - JSONRenderer: structured JSON output for tool integration
//   - MarkdownRenderer: GitHub Flavored Markdown for documentation and PRs
//   - HTMLRenderer: a self-contained HTML directory for browsers
//
// Design decision: We separate rendering from the report configuration
// contract (the report package) and from the build result structures (the
// model package) to follow the single responsibility principle. Adding a
// new output format means adding one renderer here and registering it with
// the generate runner.
//
// Renderers implement the Renderer interface. A renderer receives a
// destination path whose shape (file or directory) matches the OutputType
// of the report it is registered for; the generate runner verifies the
// shape after rendering.
package render
