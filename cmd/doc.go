// Package cmd provides the command-line interface for jsonscrub.
//
// This package implements all CLI commands using the Cobra framework,
// covering the full sanitization workflow from one-shot cleaning to
// continuous re-sanitization.
//
// # Available Commands
//
//   - sanitize: Run the full pipeline and write a cleaned report
//   - scan: Report PII findings without modifying the document
//   - watch: Re-run sanitization whenever the input file changes
//   - version: Show version and build information
//
// # Command Examples
//
//	// Sanitize with defaults (writes input_sanitized.md)
//	jsonscrub sanitize input.json
//
//	// Sanitize to JSON with extra keyword removal
//	jsonscrub sanitize input.json --format json -k internal -k debug
//
//	// Report findings as JSON
//	jsonscrub scan input.json --format json
//
//	// Watch with a longer debounce window
//	jsonscrub watch input.json --debounce 1s
//
//	// Version details as JSON
//	jsonscrub version --format json
//
// Commands load configuration through the shared viper setup in root.go
// and log through internal/logging; flags override configuration, which
// overrides built-in defaults.
package cmd
