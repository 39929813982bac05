// Package generate executes report rendering for a build result.
//
// The Runner walks a report container, resolves each enabled report's
// output location, renders the reports concurrently, and verifies that the
// shape written to disk (file vs directory) agrees with each report's
// declared output type. Every rendered artifact is digested so the history
// store can detect identical re-generations.
//
// Design decision: The runner never mutates a report other than finalizing
// its output location at the start of a run. Reports stay pure
// configuration; everything execution-related (timing, errors, digests)
// lands in the run's Outcome instead.
package generate
