// Package mdreport provides public constants and utilities for external tools
// integrating with mdreport.
package mdreport

// Exit codes returned by the mdreport CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully and no
	// failed or errored tests were collected.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (failed tests collected,
	// unreadable input, report could not be written).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (bad flag, invalid
	// symbol table, unsupported format).
	ExitConfigError = 2
)
