// Package log provides logging for buildreport, built on top of the
// standard slog package.
//
// The PathHandler rewrites absolute filesystem paths under the user's home
// directory to the "~/..." form in log attribute values. Build reports are
// routinely generated on CI and developer machines and their logs pasted
// into issues and chat; stripping home directories keeps usernames and
// machine layout out of shared logs.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Info("report generated",
//	    "destination", "/home/alice/src/widget/reports/html", // logged as ~/src/widget/reports/html
//	)
//	slog.SetDefault(logger)
package log
