// Package symbols loads and supplies symbol tables for report decoration.
package symbols

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hackebrot/mdreport/internal/report"
	"github.com/hackebrot/mdreport/internal/schema"
)

// Default returns the built-in emoji symbol table: the pytest-emoji
// outcome defaults plus the report and duration marks.
func Default() report.SymbolTable {
	return report.SymbolTable{
		"passed":            "😃",
		"failed":            "😰",
		"skipped":           "🙄",
		"error":             "😡",
		"xfailed":           "😞",
		"xpassed":           "😲",
		report.SlotDuration: "⏱",
		report.SlotReport:   "📝",
	}
}

// Load reads a symbol table from a YAML or JSON file and validates it
// against the embedded symbol table schema. The file extension picks
// the decoder: .json for JSON, anything else for YAML.
func Load(path string) (report.SymbolTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol file: %w", err)
	}

	jsonData := data
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse symbol file: %w", err)
		}
		jsonData, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse symbol file: %w", err)
		}
	}

	if err := schema.ValidateSymbols(jsonData); err != nil {
		return nil, err
	}

	var table report.SymbolTable
	if err := json.Unmarshal(jsonData, &table); err != nil {
		return nil, fmt.Errorf("failed to parse symbol file: %w", err)
	}

	return table, nil
}
