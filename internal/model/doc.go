// Package model defines the build result data structures that reports are
// rendered from.
//
// A build system runs tasks and emits a results file (JSON or YAML); this
// package parses and validates that file into BuildResult, the single input
// every renderer consumes.
//
// Design decision: We separate the result model from report rendering
// (render package) and report configuration (report package) to follow the
// single responsibility principle. New output formats never touch these
// structures.
package model
