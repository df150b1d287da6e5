package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", "http://example.com:9999", "-d", "other.db", "-t", "25", "-i", "7")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://example.com:9999", cfg.BaseURL)
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	withArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, "-a", "http://example.com:9999", "-unknown", "x")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://example.com:9999", cfg.BaseURL)
}
