package testparser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hackebrot/mdreport/internal/report"
)

// Static regexes for Go test text output parsing.
// Compiled once at package init for performance.
var (
	goResultRegex  = regexp.MustCompile(`^\s*--- (PASS|FAIL|SKIP): (\S+) \(([0-9.]+)s\)`)
	goPackageRegex = regexp.MustCompile(`^(ok|FAIL)\s+(\S+)\s+(?:([0-9.]+)s)?`)
	goErrorLine    = regexp.MustCompile(`^\s+\S+\.go:\d+:`)
)

// GoParser parses go test -v text output.
type GoParser struct{}

// Name returns the parser name.
func (p *GoParser) Name() string {
	return "go"
}

// Parse extracts a session from go test -v output.
// Go test outputs lines like:
//
//	--- PASS: TestFoo (0.00s)
//	--- FAIL: TestBar (0.01s)
//	--- SKIP: TestBaz (0.00s)
//	ok  	example.com/pkg	0.123s
//
// Test results are grouped under the package summary line that
// follows them. The session duration is the sum of the package
// elapsed times.
func (p *GoParser) Parse(output string) Session {
	session := Session{}
	lines := strings.Split(output, "\n")

	// Events collected since the last package summary line; their
	// Location is filled in once the package name is known.
	var pending []Event

	for i, line := range lines {
		if match := goResultRegex.FindStringSubmatch(line); match != nil {
			event := Event{
				Outcome: outcomeForStatus(match[1]),
				Detail: report.TestDetail{
					Name:     match[2],
					Duration: parseSeconds(match[3]),
				},
			}
			if match[1] == "FAIL" {
				event.Detail.Output = failureReason(lines, i)
			}
			pending = append(pending, event)
			continue
		}

		if match := goPackageRegex.FindStringSubmatch(line); match != nil {
			for _, event := range pending {
				event.Detail.Location = match[2]
				session.recordEvent(event.Outcome, event.Detail)
			}
			pending = nil
			session.Duration += parseSeconds(match[3])
			// A package summary line alone (e.g. "[no test files]")
			// still marks a valid, possibly empty run.
			session.Parsed = true
		}
	}

	// Events without a trailing package line (truncated output)
	for _, event := range pending {
		session.recordEvent(event.Outcome, event.Detail)
	}

	return session
}

func outcomeForStatus(status string) report.Outcome {
	switch status {
	case "FAIL":
		return report.Failed
	case "SKIP":
		return report.Skipped
	default:
		return report.Passed
	}
}

func parseSeconds(s string) time.Duration {
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// isTestBoundary returns true if the line marks the start of a test
// run or the result of a different test.
func isTestBoundary(line string) bool {
	return strings.HasPrefix(line, "=== RUN") ||
		strings.HasPrefix(strings.TrimLeft(line, " \t"), "--- ")
}

// failureReason scans backwards from a --- FAIL line for the error
// lines the test logged (file.go:NN: message format).
func failureReason(lines []string, failLineIdx int) string {
	var reasons []string

	for i := failLineIdx - 1; i >= 0; i-- {
		line := lines[i]
		if isTestBoundary(line) {
			break
		}
		if goErrorLine.MatchString(line) {
			reasons = append([]string{strings.TrimSpace(line)}, reasons...)
		}
	}

	return strings.Join(reasons, "\n")
}
