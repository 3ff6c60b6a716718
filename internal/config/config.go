// Package config loads grimoire configuration from file and environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the full grimoire configuration.
type Config struct {
	// SkillsDir is where skill bundles are installed.
	SkillsDir string `mapstructure:"skills_dir"`
	// Manifest is the skills manifest path. Defaults to manifest.yaml
	// inside SkillsDir.
	Manifest string `mapstructure:"manifest"`
	// Threshold is the minimum activation score.
	Threshold int `mapstructure:"threshold"`
	// MaxResults caps how many skills activate per prompt.
	MaxResults int `mapstructure:"max_results"`
	// ShowMatches includes matched-signal evidence in injected context.
	ShowMatches bool `mapstructure:"show_matches"`
	// LogLevel controls stderr diagnostics (logrus level names).
	LogLevel string `mapstructure:"log_level"`
}

// Load loads configuration from file and environment. Threshold and
// max_results default through viper so an explicit zero in the config file
// is preserved.
func Load() (*Config, error) {
	viper.SetDefault("threshold", 1)
	viper.SetDefault("max_results", 3)

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.SkillsDir == "" {
		cfg.SkillsDir = filepath.Join(".claude", "skills")
	}

	if cfg.Manifest == "" {
		cfg.Manifest = filepath.Join(cfg.SkillsDir, "manifest.yaml")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold cannot be negative (got %d)", c.Threshold)
	}

	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1 (got %d)", c.MaxResults)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}

// LoggerLevel returns the configured log level, falling back to warn if the
// level string is invalid.
func (c *Config) LoggerLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
