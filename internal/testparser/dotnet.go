package testparser

import (
	"regexp"
	"strconv"

	"github.com/hackebrot/mdreport/internal/report"
)

// Static regexes for .NET test output parsing.
// Compiled once at package init for performance.
var (
	dotnetSummaryRegex = regexp.MustCompile(`Failed:\s*(\d+),\s*Passed:\s*(\d+),\s*Skipped:\s*(\d+)`)
	dotnetPassedRegex  = regexp.MustCompile(`(?m)^\s*Passed:\s*(\d+)`)
	dotnetFailedRegex  = regexp.MustCompile(`(?m)^\s*Failed:\s*(\d+)`)
	dotnetSkippedRegex = regexp.MustCompile(`(?m)^\s*Skipped:\s*(\d+)`)
)

// DotnetParser parses .NET test output.
type DotnetParser struct{}

// Name returns the parser name.
func (p *DotnetParser) Name() string {
	return "dotnet"
}

// Parse extracts a session from dotnet test output.
// dotnet test outputs summary lines like:
//
//	Passed!  - Failed:     0, Passed:    47, Skipped:     3, Total:    50
//	Failed!  - Failed:     2, Passed:    45, Skipped:     3, Total:    50
//
// Or in newer versions:
//
//	Total tests: 50
//	     Passed: 47
//	     Failed: 2
//	    Skipped: 3
func (p *DotnetParser) Parse(output string) Session {
	session := Session{}

	// Try the single-line summary format first
	if match := dotnetSummaryRegex.FindStringSubmatch(output); len(match) >= 4 {
		failed, _ := strconv.Atoi(match[1])
		passed, _ := strconv.Atoi(match[2])
		skipped, _ := strconv.Atoi(match[3])
		session.record(report.Failed, failed)
		session.record(report.Passed, passed)
		session.record(report.Skipped, skipped)
		session.Parsed = true
		return session
	}

	// Fall back to the newer multi-line format
	counts := []struct {
		re *regexp.Regexp
		o  report.Outcome
	}{
		{dotnetFailedRegex, report.Failed},
		{dotnetPassedRegex, report.Passed},
		{dotnetSkippedRegex, report.Skipped},
	}

	for _, entry := range counts {
		if match := entry.re.FindStringSubmatch(output); len(match) >= 2 {
			n, _ := strconv.Atoi(match[1])
			session.record(entry.o, n)
			session.Parsed = true
		}
	}

	return session
}
