package report

import "time"

// Counts holds per-outcome tallies for one session.
// The zero value is ready to use.
type Counts [outcomeCount]int

// Of returns the tally for the given outcome.
func (c Counts) Of(o Outcome) int {
	if o < 0 || o >= outcomeCount {
		return 0
	}
	return c[o]
}

// Total returns the sum of all tallies.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// TestDetail describes a single completed test for the verbose
// results section.
type TestDetail struct {
	Name     string        // test identifier (e.g., "TestFoo/subtest" or "test_bar")
	Location string        // grouping key: package path or test file
	Duration time.Duration // elapsed time of the individual test
	Phase    string        // lifecycle phase for error outcomes (e.g., "setup")
	Output   string        // captured output for failed/error outcomes
}

// Collector tallies test outcomes observed during one run.
//
// A Collector is owned by a single session and expects serialized
// delivery; it performs no locking.
type Collector struct {
	counts  Counts
	details [outcomeCount][]TestDetail
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record increments the tally for the given outcome.
// Outcomes outside the closed set are a caller bug and are ignored
// rather than tallied under an arbitrary kind.
func (c *Collector) Record(o Outcome) {
	if o < 0 || o >= outcomeCount {
		return
	}
	c.counts[o]++
}

// RecordDetail records a completed test together with its detail,
// incrementing the tally for the given outcome.
func (c *Collector) RecordDetail(o Outcome, d TestDetail) {
	if o < 0 || o >= outcomeCount {
		return
	}
	c.counts[o]++
	c.details[o] = append(c.details[o], d)
}

// Snapshot returns a copy of the current tallies. Later Record calls
// do not affect a snapshot already taken.
func (c *Collector) Snapshot() Counts {
	return c.counts
}

// Details returns the recorded details for the given outcome, in
// recording order. The returned slice is a copy.
func (c *Collector) Details(o Outcome) []TestDetail {
	if o < 0 || o >= outcomeCount {
		return nil
	}
	out := make([]TestDetail, len(c.details[o]))
	copy(out, c.details[o])
	return out
}
