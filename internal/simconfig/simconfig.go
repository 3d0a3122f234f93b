// Package simconfig holds the headless-run configuration loaded from a small
// YAML file: tick cadence, run length and gravity override.
package simconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one simulation run.
type Config struct {
	TickRate  int         `yaml:"tick_rate"`  // ticks per second
	TickCount int         `yaml:"tick_count"` // 0 means run until interrupted
	Gravity   *[3]float32 `yaml:"gravity,omitempty"`
	LogEvents bool        `yaml:"log_events"`
}

// Default returns the standard 60 Hz, ten-second run.
func Default() Config {
	return Config{
		TickRate:  60,
		TickCount: 600,
	}
}

// Load reads a config file. A missing file yields Default(); a malformed one
// is an error so a typo cannot silently fall back to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.TickCount < 0 {
		cfg.TickCount = 0
	}
	return cfg, nil
}

// Save writes the config back out, for generating starter files.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// TickDuration returns the per-tick timestep in seconds.
func (c Config) TickDuration() float32 {
	return 1 / float32(c.TickRate)
}
