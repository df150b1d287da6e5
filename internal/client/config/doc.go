// Package config loads runtime configuration for the chat client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables, with an optional .env file (CRISPY_BASE_URL,
//     CRISPY_REQUEST_TIMEOUT, CRISPY_DATABASE_PATH,
//     CRISPY_ONLINE_CHECK_INTERVAL).
//  4. Command-line flags (-a, -d, -t, -i), which override everything else.
//
// # JSON schema
//
// Durations can be strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "database_path": "session.db",
//	  "online_check_interval": "3s"
//	}
package config
