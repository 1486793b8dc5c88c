// Package schema provides JSON schema validation for mdreport configuration files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/hackebrot/mdreport/schema"
)

var (
	symbolsSchema *jsonschema.Schema
	configSchema  *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{"symbols.schema.json", "config.schema.json"} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}

			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}

			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		symbolsSchema, compileErr = compiler.Compile("symbols.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile symbols schema: %w", compileErr)
			return
		}

		configSchema, compileErr = compiler.Compile("config.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile config schema: %w", compileErr)
			return
		}
	})

	return compileErr
}

// ValidateSymbols validates JSON data against the symbol table schema.
func ValidateSymbols(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(symbolsSchema, "symbol table", data)
}

// ValidateConfig validates JSON data against the configuration schema.
func ValidateConfig(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(configSchema, "config", data)
}

func validate(s *jsonschema.Schema, what string, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%s validation failed: %w", what, err)
	}

	return nil
}
