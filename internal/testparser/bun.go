package testparser

import (
	"regexp"
	"strconv"

	"github.com/hackebrot/mdreport/internal/report"
)

// Static regexes for Bun test output parsing.
// Compiled once at package init for performance.
var (
	bunPassRegex = regexp.MustCompile(`(\d+)\s+pass`)
	bunFailRegex = regexp.MustCompile(`(\d+)\s+fail`)
	bunSkipRegex = regexp.MustCompile(`(\d+)\s+skip`)
)

// BunParser parses Bun test output.
type BunParser struct{}

// Name returns the parser name.
func (p *BunParser) Name() string {
	return "bun"
}

// Parse extracts a session from Bun test output.
// Bun test outputs summary lines like:
//
//	47 pass
//	2 fail
//	3 skip
func (p *BunParser) Parse(output string) Session {
	session := Session{}

	counts := []struct {
		re *regexp.Regexp
		o  report.Outcome
	}{
		{bunFailRegex, report.Failed},
		{bunPassRegex, report.Passed},
		{bunSkipRegex, report.Skipped},
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
