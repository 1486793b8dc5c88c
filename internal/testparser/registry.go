package testparser

import (
	"sort"
	"strings"
)

// Registry maps format identifiers to their parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a new parser registry with all built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	// Register all built-in parsers
	goJSONParser := &GoJSONParser{}
	goParser := &GoParser{}
	pytestParser := &PytestParser{}
	cargoParser := &CargoParser{}
	dotnetParser := &DotnetParser{}
	bunParser := &BunParser{}
	denoParser := &DenoParser{}

	// Map format identifiers to parsers
	r.parsers["go-json"] = goJSONParser
	r.parsers["gojson"] = goJSONParser
	r.parsers["go"] = goParser
	r.parsers["gotest"] = goParser
	r.parsers["pytest"] = pytestParser
	r.parsers["python"] = pytestParser
	r.parsers["py"] = pytestParser
	r.parsers["cargo"] = cargoParser
	r.parsers["rust"] = cargoParser
	r.parsers["rs"] = cargoParser
	r.parsers["dotnet"] = dotnetParser
	r.parsers["cs"] = dotnetParser
	r.parsers["csharp"] = dotnetParser
	r.parsers["bun"] = bunParser
	r.parsers["deno"] = denoParser

	return r
}

// GetParser returns a parser for the given format identifier.
// Returns nil if no parser is found.
func (r *Registry) GetParser(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// RegisterParser adds a custom parser for a format identifier.
func (r *Registry) RegisterParser(format string, parser Parser) {
	r.parsers[strings.ToLower(format)] = parser
}

// Formats returns all registered format identifiers, sorted.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.parsers))
	for format := range r.parsers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
