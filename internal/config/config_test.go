package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/shopdocs/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ADDR", "APP_NAME", "LOG_FORMAT", "LOG_LEVEL", "CONTENT_DIR", "SESSION_SECRET", "API_RATE_LIMIT"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultAddr, cfg.Addr)
		assert.Equal(t, config.DefaultAppName, cfg.AppName)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.ContentDir)
		assert.Equal(t, config.DefaultAPIRateLimit, cfg.APIRateLimit)
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		t.Setenv("APP_ADDR", "127.0.0.1:9000")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CONTENT_DIR", dir)
		t.Setenv("API_RATE_LIMIT", "2.5")

		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, dir, cfg.ContentDir)
		assert.Equal(t, 2.5, cfg.APIRateLimit)
	})

	t.Run("Invalid log format", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := config.FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat")
	})

	t.Run("Missing content dir", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONTENT_DIR", "/definitely/not/here")

		_, err := config.FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ContentDir")
	})

	t.Run("Unparseable rate limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_RATE_LIMIT", "fast")

		_, err := config.FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_RATE_LIMIT")
	})

	t.Run("Short session secret", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SESSION_SECRET", "short")

		_, err := config.FromEnv()
		assert.Error(t, err)
	})
}
