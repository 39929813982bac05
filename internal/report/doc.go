// Package report defines the configuration contract for build report
// artifacts.
//
// A Report describes one output a build produces: its symbolic name, a
// human-readable display name, whether it should be generated, where the
// output lands on the filesystem, and whether that output is a single file
// or a directory tree.
//
// Design decision: Report is deliberately a pure configuration surface with
// no rendering logic. Rendering lives in the render package and execution in
// the generate package, so new output formats can be added without touching
// the contract that build tasks program against.
//
// The package also provides the lazy-evaluation machinery (Provider and
// Property) that backs the settable members of a Report, and Container, a
// named ordered collection of reports.
package report
