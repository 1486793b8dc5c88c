package testparser

import (
	"bufio"
	"encoding/json"
	"strings"
	"time"

	"github.com/hackebrot/mdreport/internal/report"
)

// TestEvent represents a single event from go test -json output.
type TestEvent struct {
	Time    string  `json:"Time"`
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
	Output  string  `json:"Output"`
}

// GoJSONParser parses go test -json output.
type GoJSONParser struct{}

// Name returns the parser name.
func (p *GoJSONParser) Name() string {
	return "go-json"
}

// Parse extracts a session from a go test -json event stream.
// Each line is one JSON event; pass/fail/skip actions on test-level
// events mark a completed test. Captured output is retained for
// failed tests, and the session duration is derived from the first
// and last event timestamps.
func (p *GoJSONParser) Parse(output string) Session {
	session := Session{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	currentOutput := make(map[string][]string)
	var firstStamp, lastStamp time.Time

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var event TestEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}

		if stamp, err := time.Parse(time.RFC3339Nano, event.Time); err == nil {
			if firstStamp.IsZero() {
				firstStamp = stamp
			}
			lastStamp = stamp
		}

		// Package-level events (no test name) carry no per-test
		// outcome, but a package result still proves this was a test
		// run. A package with no tests parses as a zero-test session.
		if event.Test == "" {
			switch event.Action {
			case "pass", "fail", "skip":
				session.Parsed = true
			}
			continue
		}

		key := event.Package + "/" + event.Test

		switch event.Action {
		case "output":
			if event.Output != "" {
				currentOutput[key] = append(currentOutput[key], event.Output)
			}

		case "pass":
			session.recordEvent(report.Passed, detail(event, nil))
			delete(currentOutput, key)

		case "fail":
			session.recordEvent(report.Failed, detail(event, currentOutput[key]))
			delete(currentOutput, key)

		case "skip":
			session.recordEvent(report.Skipped, detail(event, nil))
			delete(currentOutput, key)
		}
	}

	if !firstStamp.IsZero() {
		session.Duration = lastStamp.Sub(firstStamp)
	}

	return session
}

// detail builds the per-test detail for a completed test event.
func detail(event TestEvent, outputLines []string) report.TestDetail {
	return report.TestDetail{
		Name:     event.Test,
		Location: event.Package,
		Duration: time.Duration(event.Elapsed * float64(time.Second)),
		Output:   failureOutput(outputLines),
	}
}

// failureOutput joins captured output lines, dropping the test
// runner's own framing lines (=== RUN, --- FAIL).
func failureOutput(outputLines []string) string {
	var kept []string
	for _, line := range outputLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "=== RUN") ||
			strings.HasPrefix(trimmed, "--- FAIL") {
			continue
		}
		kept = append(kept, strings.TrimRight(line, "\n"))
	}
	return strings.Join(kept, "\n")
}
