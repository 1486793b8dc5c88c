package testparser

import (
	"regexp"
	"strconv"
	"time"

	"github.com/hackebrot/mdreport/internal/report"
)

// Static regexes for pytest output parsing.
// Compiled once at package init for performance.
var (
	pytestPassedRegex   = regexp.MustCompile(`(\d+) passed`)
	pytestFailedRegex   = regexp.MustCompile(`(\d+) failed`)
	pytestSkippedRegex  = regexp.MustCompile(`(\d+) skipped`)
	pytestXFailedRegex  = regexp.MustCompile(`(\d+) xfailed`)
	pytestXPassedRegex  = regexp.MustCompile(`(\d+) xpassed`)
	pytestErrorRegex    = regexp.MustCompile(`(\d+) errors?`)
	pytestNoTestsRegex  = regexp.MustCompile(`no tests ran`)
	pytestDurationRegex = regexp.MustCompile(`in ([0-9]+(?:\.[0-9]+)?)s`)
)

// PytestParser parses Python pytest terminal output.
type PytestParser struct{}

// Name returns the parser name.
func (p *PytestParser) Name() string {
	return "pytest"
}

// Parse extracts a session from pytest output.
// pytest outputs summary lines like:
//
//	======= 47 passed in 0.12s =======
//	======= 45 passed, 2 failed in 0.12s =======
//	======= 1 failed, 2 passed, 1 skipped, 1 xfailed, 1 xpassed, 1 error in 0.05s =======
//
// Note that "passed" never matches "xpassed" (and likewise for
// "failed"/"xfailed") because the count digits must directly precede
// the word.
func (p *PytestParser) Parse(output string) Session {
	session := Session{}

	outcomes := []struct {
		re *regexp.Regexp
		o  report.Outcome
	}{
		{pytestFailedRegex, report.Failed},
		{pytestPassedRegex, report.Passed},
		{pytestSkippedRegex, report.Skipped},
		{pytestXFailedRegex, report.XFailed},
		{pytestXPassedRegex, report.XPassed},
		{pytestErrorRegex, report.Error},
	}

	for _, entry := range outcomes {
		if match := entry.re.FindStringSubmatch(output); len(match) >= 2 {
			n, _ := strconv.Atoi(match[1])
			session.record(entry.o, n)
		}
	}

	// "======= no tests ran in 0.01s =======" is a valid, empty run.
	if pytestNoTestsRegex.MatchString(output) {
		session.Parsed = true
	}

	// The trailing "in 0.12s" is the session wall-clock duration.
	if match := pytestDurationRegex.FindStringSubmatch(output); len(match) >= 2 {
		if seconds, err := strconv.ParseFloat(match[1], 64); err == nil {
			session.Duration = time.Duration(seconds * float64(time.Second))
		}
	}

	return session
}
