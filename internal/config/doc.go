// Package config provides configuration loading and validation for
// buildreport.
//
// Configuration comes from two places, merged in this order:
//  1. the .buildreport YAML file (per-report settings and defaults)
//  2. CLI flags (tool-level settings, which win over the file)
//
// Design decision: We use a single flat Config struct populated from CLI
// flags and passed through the application via dependency injection rather
// than global state. Per-report file settings live in File/ReportConfig and
// are applied onto a report.Container in one place (File.ApplyTo).
package config
