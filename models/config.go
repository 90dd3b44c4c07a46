package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDailyLimit  = 3
	DefaultSerpLatency = 1500 * time.Millisecond
	DefaultWordWrap    = 100
	DefaultConfigFile  = "contentgen.yaml"
)

// Config holds runtime settings. Values come from an optional YAML file and
// are overridden by CLI flags.
type Config struct {
	DailyLimit  int           `yaml:"daily_limit"`
	SerpLatency time.Duration `yaml:"serp_latency"`
	StatePath   string        `yaml:"state_path"`
	OutputDir   string        `yaml:"output_dir"`
	WordWrap    int           `yaml:"word_wrap"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		DailyLimit:  DefaultDailyLimit,
		SerpLatency: DefaultSerpLatency,
		OutputDir:   ".",
		WordWrap:    DefaultWordWrap,
	}
}

// LoadConfig reads a YAML config file on top of the defaults. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DailyLimit < 0 {
		return fmt.Errorf("daily_limit must be >= 0, got %d", c.DailyLimit)
	}
	if c.SerpLatency < 0 {
		return fmt.Errorf("serp_latency must be >= 0, got %s", c.SerpLatency)
	}
	if c.WordWrap < 0 {
		return fmt.Errorf("word_wrap must be >= 0, got %d", c.WordWrap)
	}
	return nil
}
