// Package config handles YAML config file loading for the crucible CLI.
package config

import (
	"fmt"
	"time"
)

// Config represents a crucible.yaml configuration file.
// All values are optional and act as defaults for CLI flags.
// CLI flags always override config values.
type Config struct {
	// Model is the model name requests are issued against.
	Model string `yaml:"model"`
	// BaseURL is the gateway endpoint.
	BaseURL string `yaml:"base_url"`
	// Token is the API token, typically "${CRUCIBLE_TOKEN}".
	Token string `yaml:"token"`
	// Timeout bounds each request.
	Timeout Duration `yaml:"timeout"`
	// Transcript is an optional path for call recording.
	Transcript string `yaml:"transcript"`
}

// Duration wraps time.Duration for YAML string parsing (e.g. "10s", "5m").
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a duration string like "10s" or "5m30s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}
