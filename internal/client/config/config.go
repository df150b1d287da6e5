package config

import "time"

// Config holds runtime settings for the chat client.
//
// Fields:
//   - BaseURL: origin of the account/chat service, e.g. "http://localhost:8080".
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - DatabasePath: SQLite DSN/path for the local session database.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	DatabasePath        string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "session.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a file is given), the environment (including a .env file),
// and finally command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
