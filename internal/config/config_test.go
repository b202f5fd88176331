package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:4000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
	assert.Equal(t, "/api", cfg.API.BasePath)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout.Duration())
	assert.Equal(t, "3100", cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "") // register cleanup, then clear it
	os.Unsetenv("API_BASE_URL")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:4000/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
}

func TestParseDuration(t *testing.T) {
	for input, want := range map[string]time.Duration{
		"10s":    10 * time.Second,
		"5m":     5 * time.Minute,
		"10":     10 * time.Second,
		`"10s"`:  10 * time.Second,
		"'5'":    5 * time.Second,
		" 30s  ": 30 * time.Second,
	} {
		got, err := parseDuration(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := parseDuration("")
	assert.Error(t, err)
	_, err = parseDuration("banana")
	assert.Error(t, err)
}
