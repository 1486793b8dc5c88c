package testparser

import (
	"regexp"
	"strconv"

	"github.com/hackebrot/mdreport/internal/report"
)

// Static regexes for Cargo test output parsing.
// Compiled once at package init for performance.
var (
	cargoResultRegex   = regexp.MustCompile(`test result: \w+\.\s*(\d+) passed;\s*(\d+) failed;\s*(\d+) ignored`)
	cargoFinishedRegex = regexp.MustCompile(`finished in ([0-9]+(?:\.[0-9]+)?)s`)
)

// CargoParser parses Rust/Cargo test output.
type CargoParser struct{}

// Name returns the parser name.
func (p *CargoParser) Name() string {
	return "cargo"
}

// Parse extracts a session from Cargo test output.
// Cargo test outputs a summary line per test binary:
//
//	test result: ok. 47 passed; 0 failed; 3 ignored; 0 measured; 0 filtered out; finished in 0.12s
//	test result: FAILED. 45 passed; 2 failed; 3 ignored; 0 measured; 0 filtered out; finished in 0.12s
//
// Multiple binaries' lines are aggregated; ignored tests count as
// skipped.
func (p *CargoParser) Parse(output string) Session {
	session := Session{}

	matches := cargoResultRegex.FindAllStringSubmatch(output, -1)
	for _, match := range matches {
		if len(match) < 4 {
			continue
		}
		passed, _ := strconv.Atoi(match[1])
		failed, _ := strconv.Atoi(match[2])
		ignored, _ := strconv.Atoi(match[3])

		session.record(report.Passed, passed)
		session.record(report.Failed, failed)
		session.record(report.Skipped, ignored)
	}

	// An all-zero summary line is still a parsed (empty) session.
	if len(matches) > 0 {
		session.Parsed = true
	}

	for _, match := range cargoFinishedRegex.FindAllStringSubmatch(output, -1) {
		session.Duration += parseSeconds(match[1])
	}

	return session
}
