// Package config loads runtime settings for the gratitude CLI, layered as
// defaults → JSON file (-c/-config) → command-line flags, later sources
// winning.
package config

import "time"

// Config holds runtime settings for the gratitude CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the profile/streak API.
//   - DatabasePath: sqlite file holding the local journal.
//   - AuthToken: bearer token from the identity provider; empty means
//     local-only operation, no remote calls at all.
//   - RequestTimeout: bounded wait for every remote call. The 30s default
//     covers cold starts on the remote compute tier.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	AuthToken      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "journal.db"
	c.AuthToken = ""
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config from defaults, JSON file and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
