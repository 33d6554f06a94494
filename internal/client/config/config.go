package config

import "time"

// Default base API origin used when no configuration overrides it; the /api
// prefix is part of the base URL.
const defaultAPIBaseURL = "https://pp-backend-a6z1.onrender.com/api"

// Config holds runtime settings for the client CLI.
//
// Fields:
//   - APIBaseURL: origin plus /api prefix of the backend REST surface.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local SQLite file holding the session token.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = defaultAPIBaseURL
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "ppclient.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
