// Package errors provides structured error types and exit codes for mdreport.
package errors

import (
	"fmt"
)

// Exit codes used by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (failures collected, sink failed, etc.)
	ExitConfigError  = 2 // Configuration error (bad flag, invalid symbol file, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
)

// ReportError is the base error type for mdreport.
type ReportError struct {
	Kind    ErrorKind
	Message string
	Path    string // file path if applicable
	Cause   error  // underlying error
}

func (e *ReportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ReportError) ExitCode() int {
	if e.Kind == KindConfig {
		return ExitConfigError
	}
	return ExitRuntimeError
}

// Config creates a new configuration error.
func Config(message string) *ReportError {
	return &ReportError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ReportError {
	return Config(fmt.Sprintf(format, args...))
}

// Sink creates an error for a report destination path.
func Sink(path string, err error) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: fmt.Sprintf("failed to write report: %v", err),
		Path:    path,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if re, ok := err.(*ReportError); ok {
		return re.ExitCode()
	}
	return ExitRuntimeError
}
