// Package config assembles runtime settings from defaults, an optional
// JSON file, and command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - BaseURL: root of the remote story service's REST API.
//   - RequestTimeout: per-request deadline applied by the app.
//   - DatabasePath: sqlite file holding persisted client state.
//   - Verbose: enable debug logging.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "snooze.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
