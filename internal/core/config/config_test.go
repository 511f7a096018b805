package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("TRACKING_PATH")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("ORDER_CACHE_TTL")

	os.Setenv("BACKEND_URL", "https://shop.test")
	os.Setenv("BACKEND_TOKEN", "tok_default")
	defer func() {
		os.Unsetenv("BACKEND_URL")
		os.Unsetenv("BACKEND_TOKEN")
	}()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "/api/orders/%s/tracking/", cfg.Tracking.Path)
	assert.Equal(t, 60, cfg.Cache.OrderTTLSeconds)
	assert.Empty(t, cfg.Cache.RedisURL)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("BACKEND_URL", "https://shop.example.com")
	os.Setenv("BACKEND_TOKEN", "tok_123")
	os.Setenv("TRACKING_PATH", "/api/track/%s/")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("ORDER_CACHE_TTL", "120")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("BACKEND_URL")
		os.Unsetenv("BACKEND_TOKEN")
		os.Unsetenv("TRACKING_PATH")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("ORDER_CACHE_TTL")
	}()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://shop.example.com", cfg.Backend.URL)
	assert.Equal(t, "tok_123", cfg.Backend.Token)
	assert.Equal(t, "/api/track/%s/", cfg.Tracking.Path)
	assert.Equal(t, "redis://localhost:6379", cfg.Cache.RedisURL)
	assert.Equal(t, 120, cfg.Cache.OrderTTLSeconds)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("BACKEND_URL")
	os.Unsetenv("BACKEND_TOKEN")

	dir := t.TempDir()
	content := []byte(`
APP_ENV=staging
SERVER_PORT=7070
BACKEND_URL=https://staging.shop.test
BACKEND_TOKEN=tok_staging
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), content, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.shop.test", cfg.Backend.URL)
	assert.Equal(t, "tok_staging", cfg.Backend.Token)
}

// TestLoad_MissingRequired verifies that missing required values fail loading.
func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("BACKEND_URL")
	os.Unsetenv("BACKEND_TOKEN")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}
