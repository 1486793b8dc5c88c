package mdreport_test

import (
	"testing"

	"github.com/hackebrot/mdreport/internal/errors"
	"github.com/hackebrot/mdreport/pkg/mdreport"
)

// TestExitCodeValues verifies that exit code constants have the expected values.
func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", mdreport.ExitSuccess, 0},
		{"ExitFailure", mdreport.ExitFailure, 1},
		{"ExitConfigError", mdreport.ExitConfigError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("mdreport.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodesMatchInternal verifies the public constants stay in sync
// with the internal errors package.
func TestExitCodesMatchInternal(t *testing.T) {
	if mdreport.ExitSuccess != errors.ExitSuccess {
		t.Errorf("ExitSuccess = %d, internal = %d", mdreport.ExitSuccess, errors.ExitSuccess)
	}
	if mdreport.ExitFailure != errors.ExitRuntimeError {
		t.Errorf("ExitFailure = %d, internal = %d", mdreport.ExitFailure, errors.ExitRuntimeError)
	}
	if mdreport.ExitConfigError != errors.ExitConfigError {
		t.Errorf("ExitConfigError = %d, internal = %d", mdreport.ExitConfigError, errors.ExitConfigError)
	}
}
