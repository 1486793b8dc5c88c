package testparser

import (
	"regexp"
	"strconv"
	"time"

	"github.com/hackebrot/mdreport/internal/report"
)

// Static regexes for Deno test output parsing.
// Compiled once at package init for performance.
var (
	denoPipeRegex     = regexp.MustCompile(`(\d+) passed\s*\|\s*(\d+) failed`)
	denoSemiRegex     = regexp.MustCompile(`(\d+) passed;\s*(\d+) failed(?:;\s*(\d+) ignored)?`)
	denoDurationRegex = regexp.MustCompile(`\((\d+)ms\)`)
)

// DenoParser parses Deno test output.
type DenoParser struct{}

// Name returns the parser name.
func (p *DenoParser) Name() string {
	return "deno"
}

// Parse extracts a session from Deno test output.
// Deno test outputs summary lines like:
//
//	ok | 47 passed | 0 failed (123ms)
//	FAILED | 45 passed | 2 failed (123ms)
//
// Or in newer versions:
//
//	47 passed; 2 failed; 3 ignored
func (p *DenoParser) Parse(output string) Session {
	session := Session{}

	if match := denoPipeRegex.FindStringSubmatch(output); len(match) >= 3 {
		passed, _ := strconv.Atoi(match[1])
		failed, _ := strconv.Atoi(match[2])
		session.record(report.Passed, passed)
		session.record(report.Failed, failed)
		session.Parsed = true
	} else if match := denoSemiRegex.FindStringSubmatch(output); len(match) >= 3 {
		passed, _ := strconv.Atoi(match[1])
		failed, _ := strconv.Atoi(match[2])
		session.record(report.Passed, passed)
		session.record(report.Failed, failed)
		if match[3] != "" {
			ignored, _ := strconv.Atoi(match[3])
			session.record(report.Skipped, ignored)
		}
		session.Parsed = true
	}

	if match := denoDurationRegex.FindStringSubmatch(output); len(match) >= 2 {
		ms, _ := strconv.Atoi(match[1])
		session.Duration = time.Duration(ms) * time.Millisecond
	}

	return session
}
