package testparser

import (
	"testing"
	"time"

	"github.com/hackebrot/mdreport/internal/report"
)

func TestPytestParser(t *testing.T) {
	t.Parallel()
	parser := &PytestParser{}

	tests := []struct {
		name     string
		output   string
		counts   report.Counts
		duration time.Duration
		parsed   bool
	}{
		{
			name:     "basic pass",
			output:   "======= 47 passed in 0.12s =======",
			counts:   counts(0, 47, 0, 0, 0, 0),
			duration: 120 * time.Millisecond,
			parsed:   true,
		},
		{
			name:     "with failures",
			output:   "======= 45 passed, 2 failed in 0.12s =======",
			counts:   counts(2, 45, 0, 0, 0, 0),
			duration: 120 * time.Millisecond,
			parsed:   true,
		},
		{
			name:     "all outcome kinds",
			output:   "== 1 failed, 2 passed, 1 skipped, 1 xfailed, 1 xpassed, 1 error in 0.05s ==",
			counts:   counts(1, 2, 1, 1, 1, 1),
			duration: 50 * time.Millisecond,
			parsed:   true,
		},
		{
			name:     "plural errors",
			output:   "======= 10 passed, 2 errors in 0.12s =======",
			counts:   counts(0, 10, 0, 0, 0, 2),
			duration: 120 * time.Millisecond,
			parsed:   true,
		},
		{
			name: "verbose output",
			output: `tests/test_foo.py::test_bar PASSED
tests/test_foo.py::test_baz PASSED
======= 2 passed in 0.12s =======`,
			counts:   counts(0, 2, 0, 0, 0, 0),
			duration: 120 * time.Millisecond,
			parsed:   true,
		},
		{
			// "xpassed" must not also count as "passed", and
			// "xfailed" not as "failed".
			name:     "expected outcomes only",
			output:   "======= 3 xfailed, 2 xpassed in 1s =======",
			counts:   counts(0, 0, 0, 3, 2, 0),
			duration: time.Second,
			parsed:   true,
		},
		{
			// An empty collection is a valid zero-test run.
			name:     "no tests ran",
			output:   "======= no tests ran in 0.01s =======",
			duration: 10 * time.Millisecond,
			parsed:   true,
		},
		{
			name:   "empty output",
			output: "",
		},
		{
			name:   "no test results",
			output: "collecting ...\ncollected 0 items\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			session := parser.Parse(tt.output)
			if session.Counts != tt.counts {
				t.Errorf("Counts: got %v, want %v", session.Counts, tt.counts)
			}
			if session.Duration != tt.duration {
				t.Errorf("Duration: got %v, want %v", session.Duration, tt.duration)
			}
			if session.Parsed != tt.parsed {
				t.Errorf("Parsed: got %v, want %v", session.Parsed, tt.parsed)
			}
		})
	}
}
