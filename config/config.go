package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RenderConfig controls how a registry is turned into text
type RenderConfig struct {
	Format string `yaml:"format"` // debug, json or yaml
	Indent string `yaml:"indent"` // used by json; empty means compact
}

// Config holds the complete application configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
}

// DefaultConfig returns the default configuration: debug output with a two-space indent
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Format: "debug",
			Indent: "  ",
		},
	}
}

// Parse decodes a YAML document into a Config
// Fields left out of the document keep their default values
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Render.Format == "" {
		cfg.Render.Format = DefaultConfig().Render.Format
	}

	return cfg, nil
}
