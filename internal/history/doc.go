// Package history provides SQLite-based storage of generated report
// artifacts.
//
// Every generation run is stored as a generation row with one artifact row
// per rendered report (destination, output type, content digest, size).
// The history answers "where did the last html report land" and "did this
// run actually change anything" without re-reading report output.
//
// Design decision: We use modernc.org/sqlite, a pure-Go SQLite driver, to
// keep the binary CGO-free and trivially cross-compilable.
package history
