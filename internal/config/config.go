// Package config loads the optional tidyss configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working directory
// when no explicit path is given.
const DefaultConfigFile = ".tidyss.yaml"

// Config represents tidyss configuration options.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Format is the default samplesheet output format (yaml or json)
	Format string `yaml:"format"`

	// Extensions lists extra filename suffixes to treat as FASTQ files,
	// in addition to the built-in .fastq/.fq[.gz] set
	Extensions []string `yaml:"extensions"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Format:   "yaml",
	}
}

// LoadConfig reads configuration from path, layered over defaults. When
// path is empty, DefaultConfigFile is used if present; a missing default
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "yaml", "json":
	default:
		return fmt.Errorf("format must be 'yaml' or 'json', got %q", c.Format)
	}

	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of trace, debug, info, warn, error, got %q", c.LogLevel)
	}

	return nil
}
