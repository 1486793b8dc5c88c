// Package testparser extracts test outcomes from the output of
// various test frameworks, producing the events that feed a report
// collector.
package testparser

import (
	"time"

	"github.com/hackebrot/mdreport/internal/report"
)

// Event is one completed test together with its outcome.
type Event struct {
	Outcome report.Outcome
	Detail  report.TestDetail
}

// Session holds everything a parser could extract from one run's
// output.
type Session struct {
	Counts   report.Counts // summary counts, always populated when Parsed
	Events   []Event       // per-test events, when the format carries them
	Duration time.Duration // session duration, when the format reports one
	Parsed   bool          // true if outcomes were successfully extracted
}

// record tallies outcomes without per-test detail.
func (s *Session) record(o report.Outcome, n int) {
	if n <= 0 {
		return
	}
	s.Counts[o] += n
	s.Parsed = true
}

// recordEvent tallies one outcome with its per-test detail.
func (s *Session) recordEvent(o report.Outcome, d report.TestDetail) {
	s.Counts[o]++
	s.Events = append(s.Events, Event{Outcome: o, Detail: d})
	s.Parsed = true
}

// Feed replays the session into a collector, one call per completed
// test. Per-test events are preferred over bare counts because they
// carry the details for the verbose results section.
func (s Session) Feed(c *report.Collector) {
	if len(s.Events) > 0 {
		for _, e := range s.Events {
			c.RecordDetail(e.Outcome, e.Detail)
		}
		return
	}
	for _, o := range report.Outcomes {
		for i := 0; i < s.Counts.Of(o); i++ {
			c.Record(o)
		}
	}
}

// Parser defines the interface for test output parsers.
type Parser interface {
	// Parse extracts a session from the test framework output.
	Parse(output string) Session
	// Name returns the name of the parser.
	Name() string
}
