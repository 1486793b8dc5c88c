// Package report implements outcome collection and Markdown report
// rendering for a single test session.
package report

// Outcome is the final disposition of one executed test.
//
// The declaration order is the order outcome sections and summary
// bullets appear in the rendered report. Changing it changes the
// report format.
type Outcome int

const (
	Failed Outcome = iota
	Passed
	Skipped
	XFailed
	XPassed
	Error

	outcomeCount // sentinel, keep last
)

// Outcomes lists all outcomes in report order.
var Outcomes = [outcomeCount]Outcome{Failed, Passed, Skipped, XFailed, XPassed, Error}

// String returns the label used for this outcome in reports.
// Labels are never pluralized: "1 error", "2 error".
func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Passed:
		return "passed"
	case Skipped:
		return "skipped"
	case XFailed:
		return "xfailed"
	case XPassed:
		return "xpassed"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseOutcome converts an outcome label back to its Outcome value.
// Returns false for labels outside the closed set.
func ParseOutcome(label string) (Outcome, bool) {
	for _, o := range Outcomes {
		if o.String() == label {
			return o, true
		}
	}
	return 0, false
}
