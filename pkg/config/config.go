// Package config loads scanfix configuration from defaults, an optional
// .scanfix.yaml in the target directory, and SCANFIX_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for scanfix
type Config struct {
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	Output   OutputConfig   `mapstructure:"output"`
	Policy   PolicyConfig   `mapstructure:"policy"`
}

// FixturesConfig locates the fixture corpus
type FixturesConfig struct {
	Root string `mapstructure:"root"`
}

// OutputConfig controls where scan artifacts are written
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	ResultsFile string `mapstructure:"results_file"`
	ReportFile  string `mapstructure:"report_file"`
}

// PolicyConfig holds license policy settings
type PolicyConfig struct {
	Path   string `mapstructure:"path"`
	FailOn string `mapstructure:"fail_on"` // "any", "none"
}

var defaultConfig = Config{
	Fixtures: FixturesConfig{
		Root: "fixtures",
	},
	Output: OutputConfig{
		Dir:         ".",
		ResultsFile: "license_test_results.json",
		ReportFile:  "SCANOSS_LICENSE_TEST_REPORT.md",
	},
	Policy: PolicyConfig{
		Path:   ".scanfix/policy.yaml",
		FailOn: "none",
	},
}

// Load reads configuration for the given target directory.
// Missing config files are not an error; defaults apply.
func Load(targetDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("fixtures.root", defaultConfig.Fixtures.Root)
	v.SetDefault("output.dir", defaultConfig.Output.Dir)
	v.SetDefault("output.results_file", defaultConfig.Output.ResultsFile)
	v.SetDefault("output.report_file", defaultConfig.Output.ReportFile)
	v.SetDefault("policy.path", defaultConfig.Policy.Path)
	v.SetDefault("policy.fail_on", defaultConfig.Policy.FailOn)

	v.SetConfigName(".scanfix")
	v.SetConfigType("yaml")
	if targetDir == "" {
		targetDir = "."
	}
	v.AddConfigPath(targetDir)

	v.SetEnvPrefix("SCANFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Policy.FailOn != "any" && cfg.Policy.FailOn != "none" {
		return nil, fmt.Errorf("invalid policy.fail_on value: %q", cfg.Policy.FailOn)
	}

	return &cfg, nil
}

// Default returns a copy of the built-in defaults.
func Default() Config {
	return defaultConfig
}
