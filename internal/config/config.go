// Package config loads the optional .mdreport.yml project file, which
// supplies defaults for the generate command's flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hackebrot/mdreport/internal/schema"
)

// FileName is the project configuration file looked up in the working
// directory.
const FileName = ".mdreport.yml"

// DefaultFormat is assumed when neither the config file nor --format
// names one.
const DefaultFormat = "go-json"

// Config holds generate defaults read from .mdreport.yml. Flags given
// on the command line override these values.
type Config struct {
	MD      string `json:"md,omitempty"`
	Format  string `json:"format,omitempty"`
	Emoji   bool   `json:"emoji,omitempty"`
	Symbols string `json:"symbols,omitempty"`
	Verbose bool   `json:"verbose,omitempty"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	jsonData, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Discover loads the configuration file from dir, or returns defaults
// when no file exists.
func Discover(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(path)
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
}
