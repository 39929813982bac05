// Package main provides the entry point for the buildreport CLI.
//
// buildreport renders reports about a build run from a results file of
// task outcomes. It ships JSON, Markdown, and HTML report formats and
// keeps a local history of generated artifacts.
//
// Usage:
//
//	buildreport generate results.json
//	buildreport generate --enable '!markdown' results.json
//
// See --help for all available options.
package main

// main is the entry point for buildreport.
func main() {
	Execute()
}
