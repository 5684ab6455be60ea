// Package config handles tuning knobs for the synchronization engine.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Engine timing defaults (milliseconds).
const (
	DefaultSettleInitialDelay = 200   // grace period before the settle baseline
	DefaultSettleInterval     = 200   // pause between settle samples
	DefaultSettleMaxChecks    = 10    // settle sample budget
	DefaultTapRetries         = 3     // tap attempts before the forced final one
	DefaultVisibilityAttempts = 10    // visibility polls before tapping an element
	DefaultVisibilityInterval = 1000  // pause between visibility polls
	DefaultFindTimeout        = 17000 // element lookup timeout
)

// Config represents engine tuning (uisync.yaml). Zero fields take defaults.
type Config struct {
	SettleInitialDelayMs int `yaml:"settleInitialDelayMs"`
	SettleIntervalMs     int `yaml:"settleIntervalMs"`
	SettleMaxChecks      int `yaml:"settleMaxChecks"`
	TapRetries           int `yaml:"tapRetries"`
	VisibilityAttempts   int `yaml:"visibilityAttempts"`
	VisibilityIntervalMs int `yaml:"visibilityIntervalMs"`
	FindTimeoutMs        int `yaml:"findTimeoutMs"`
}

// Default returns a config with every knob at its default.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.SettleInitialDelayMs == 0 {
		c.SettleInitialDelayMs = DefaultSettleInitialDelay
	}
	if c.SettleIntervalMs == 0 {
		c.SettleIntervalMs = DefaultSettleInterval
	}
	if c.SettleMaxChecks == 0 {
		c.SettleMaxChecks = DefaultSettleMaxChecks
	}
	if c.TapRetries == 0 {
		c.TapRetries = DefaultTapRetries
	}
	if c.VisibilityAttempts == 0 {
		c.VisibilityAttempts = DefaultVisibilityAttempts
	}
	if c.VisibilityIntervalMs == 0 {
		c.VisibilityIntervalMs = DefaultVisibilityInterval
	}
	if c.FindTimeoutMs == 0 {
		c.FindTimeoutMs = DefaultFindTimeout
	}
}

// SettleInitialDelay returns the settle grace period as a duration.
func (c *Config) SettleInitialDelay() time.Duration {
	return time.Duration(c.SettleInitialDelayMs) * time.Millisecond
}

// SettleInterval returns the pause between settle samples as a duration.
func (c *Config) SettleInterval() time.Duration {
	return time.Duration(c.SettleIntervalMs) * time.Millisecond
}

// VisibilityInterval returns the pause between visibility polls as a duration.
func (c *Config) VisibilityInterval() time.Duration {
	return time.Duration(c.VisibilityIntervalMs) * time.Millisecond
}

// FindTimeout returns the default element lookup timeout as a duration.
func (c *Config) FindTimeout() time.Duration {
	return time.Duration(c.FindTimeoutMs) * time.Millisecond
}

// Load loads configuration from a file, applying defaults for unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromDir looks for uisync.yaml or uisync.yml in the directory. A missing
// file is not an error; defaults are returned.
func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "uisync.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	configPath = filepath.Join(dir, "uisync.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	return Default(), nil
}
