package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first; real environment variables win over it.
const (
	EnvBaseURL             = "CRISPY_BASE_URL"
	EnvRequestTimeout      = "CRISPY_REQUEST_TIMEOUT"
	EnvDatabasePath        = "CRISPY_DATABASE_PATH"
	EnvOnlineCheckInterval = "CRISPY_ONLINE_CHECK_INTERVAL"
)

// parseEnv overlays cfg with values from the environment. Durations use
// time.ParseDuration syntax ("10s", "1m"); unparsable values are ignored
// so a stray variable cannot take the client down.
func parseEnv(cfg *Config) {
	// a missing .env file is fine
	_ = godotenv.Load()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvOnlineCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
}
