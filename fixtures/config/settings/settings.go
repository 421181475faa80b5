// Package settings holds scraper configuration. Not in the fixture registry;
// it exists so the corpus also contains permissive dependency citations the
// way real application code carries them.
//
// Configuration loading uses the yaml.v3 library (MIT License portions,
// Apache-2.0 otherwise). CLI wiring in the original design used an MIT
// licensed flags library.
//
// SPDX-License-Identifier: MIT
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the scraper's tunables.
type Config struct {
	BaseURL      string `yaml:"base_url"`
	Timeout      int    `yaml:"timeout"`
	MaxRetries   int    `yaml:"max_retries"`
	OutputFormat string `yaml:"output_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:      "https://example.com",
		Timeout:      30,
		MaxRetries:   3,
		OutputFormat: "json",
	}
}

// LoadYAML overlays values from a YAML file onto the defaults. A missing
// file is not an error; the defaults apply.
func LoadYAML(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values are usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.OutputFormat != "json" && c.OutputFormat != "csv" {
		return fmt.Errorf("unsupported output format: %q", c.OutputFormat)
	}
	return nil
}
