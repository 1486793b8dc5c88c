package report

import (
	"fmt"
	"strings"
	"time"
)

// projectLink is the reference-style link definition emitted in every report.
const projectLink = "[pytest-md]: https://github.com/hackebrot/pytest-md"

// Symbol table slots that are not outcome labels.
const (
	SlotDuration = "duration"
	SlotReport   = "report"
)

// SymbolTable maps outcome labels (plus the "duration" and "report"
// slots) to short decorative strings. A nil table disables decoration.
type SymbolTable map[string]string

// Symbol returns the decoration for the given slot, or "" when the
// slot is absent.
func (t SymbolTable) Symbol(slot string) string {
	return t[slot]
}

// decorate appends the slot's symbol to s with a separating space.
// With no symbol configured, s is returned unchanged, so decorated
// and undecorated rendering share one code path.
func (t SymbolTable) decorate(s, slot string) string {
	if sym := t.Symbol(slot); sym != "" {
		return s + " " + sym
	}
	return s
}

// SessionSummary is the immutable input to Render, built once at
// session end.
type SessionSummary struct {
	Counts      Counts
	Total       int
	Duration    time.Duration
	GeneratedAt time.Time
}

// NewSessionSummary builds a SessionSummary from a counts snapshot.
func NewSessionSummary(counts Counts, duration time.Duration, generatedAt time.Time) SessionSummary {
	return SessionSummary{
		Counts:      counts,
		Total:       counts.Total(),
		Duration:    duration,
		GeneratedAt: generatedAt,
	}
}

// Details holds per-test details grouped by outcome, for the verbose
// results section.
type Details [outcomeCount][]TestDetail

// AllDetails returns the recorded details for every outcome.
func (c *Collector) AllDetails() Details {
	var d Details
	for _, o := range Outcomes {
		d[o] = c.Details(o)
	}
	return d
}

// Render produces the Markdown report document. Rendering a
// well-formed summary cannot fail and is deterministic: identical
// inputs produce byte-identical output.
func Render(s SessionSummary, symbols SymbolTable) string {
	var b strings.Builder
	writeHeader(&b, s, symbols)
	writeSummary(&b, s, symbols)
	return finish(&b)
}

// RenderWithResults renders the report with the per-test results
// sections appended after the summary.
func RenderWithResults(s SessionSummary, details Details, symbols SymbolTable) string {
	var b strings.Builder
	writeHeader(&b, s, symbols)
	writeSummary(&b, s, symbols)
	writeResults(&b, s, details, symbols)
	return finish(&b)
}

func writeHeader(b *strings.Builder, s SessionSummary, symbols SymbolTable) {
	b.WriteString("# Test Report\n\n")

	byline := fmt.Sprintf("*Report generated on %s at %s by [pytest-md]*",
		s.GeneratedAt.Format("02-Jan-2006"), s.GeneratedAt.Format("15:04:05"))
	b.WriteString(symbols.decorate(byline, SlotReport))
	b.WriteString("\n\n")
	b.WriteString(projectLink)
	b.WriteString("\n\n")
}

func writeSummary(b *strings.Builder, s SessionSummary, symbols SymbolTable) {
	b.WriteString("## Summary\n\n")

	sentence := fmt.Sprintf("%d tests ran in %.2f seconds", s.Total, s.Duration.Seconds())
	b.WriteString(symbols.decorate(sentence, SlotDuration))
	b.WriteString("\n\n")

	for _, o := range Outcomes {
		count := s.Counts.Of(o)
		if count == 0 {
			continue
		}
		bullet := fmt.Sprintf("- %d %s", count, o)
		b.WriteString(symbols.decorate(bullet, o.String()))
		b.WriteString("\n")
	}
}

func writeResults(b *strings.Builder, s SessionSummary, details Details, symbols SymbolTable) {
	for _, o := range Outcomes {
		tests := details[o]
		if len(tests) == 0 {
			continue
		}

		b.WriteString("\n")
		heading := fmt.Sprintf("## %d %s", s.Counts.Of(o), o)
		b.WriteString(symbols.decorate(heading, o.String()))
		b.WriteString("\n\n")

		for _, loc := range locations(tests) {
			b.WriteString(fmt.Sprintf("### %s\n\n", loc))
			for _, d := range tests {
				if d.Location != loc {
					continue
				}
				writeTestLine(b, o, d, symbols)
			}
		}
	}
}

// writeTestLine emits one per-test line, plus the captured output
// in a fenced block for failed and error outcomes.
func writeTestLine(b *strings.Builder, o Outcome, d TestDetail, symbols SymbolTable) {
	b.WriteString(fmt.Sprintf("%.2fs", d.Duration.Seconds()))
	// With a duration symbol this yields two spaces before the name,
	// matching pytest-md's output byte for byte.
	if sym := symbols.Symbol(SlotDuration); sym != "" {
		b.WriteString(" " + sym + " ")
	}
	if o == Error {
		b.WriteString(fmt.Sprintf(" `error at %s of %s`\n", d.Phase, d.Name))
	} else {
		b.WriteString(fmt.Sprintf(" `%s`\n", d.Name))
	}

	if (o == Error || o == Failed) && d.Output != "" {
		b.WriteString(fmt.Sprintf("\n```\n%s\n```\n", strings.TrimRight(d.Output, "\n")))
	}
}

// locations returns the distinct grouping keys in first-seen order.
func locations(tests []TestDetail) []string {
	var locs []string
	seen := make(map[string]bool)
	for _, d := range tests {
		if !seen[d.Location] {
			seen[d.Location] = true
			locs = append(locs, d.Location)
		}
	}
	return locs
}

// finish trims trailing blank lines and terminates the document with
// a single newline.
func finish(b *strings.Builder) string {
	return strings.TrimRight(b.String(), "\n") + "\n"
}
