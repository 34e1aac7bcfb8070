// Package internal contains the core implementation packages for jsonscrub.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the jsonscrub CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - config: Configuration management with validation
//   - errors: Structured errors with kinds and document paths
//   - logging: Structured logging over log/slog
//   - pii: PII detection (remote analyzer and regex fallback) and redaction
//   - report: Markdown/JSON/YAML rendering and file I/O
//   - sanitizer: The tree-sanitization pipeline and PII scan walk
//   - validation: Input and output path security checks
//   - watcher: File system monitoring with debouncing
//   - version: Build and version information
//
// # Pipeline Flow
//
// The sanitize command loads a document through report, runs the fixed
// sanitizer pipeline (null removal, sensitive-entry removal with PII
// redaction via pii, keyword removal, root-level key removal, each
// destructive stage followed by a null-removal sweep), and renders the
// result through report. The scan command reuses the pii detectors without
// modifying anything; the watch command reruns sanitize through watcher.
package internal
