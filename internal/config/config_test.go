package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_NAME", "")
	t.Setenv("BOT_TOKEN", "token-from-env")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("DB_HOST", "")

	cfg, err := load("testdata")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 5*time.Second, cfg.App.Timeout)
	assert.Equal(t, 120, cfg.App.LearnedThreshold)
	assert.Equal(t, 3, cfg.App.DifficultThreshold)
	assert.True(t, cfg.App.Reconcile)
	assert.False(t, cfg.App.OptionalCategory)
	assert.Equal(t, "http://flash.local/api", cfg.API.URL)
	assert.Equal(t, "token-from-env", cfg.BotToken)
	assert.Equal(t, "09:30", cfg.Reminder.At)

	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.DB.Enabled())
}

func TestLoad_EnvOverridesAPI(t *testing.T) {
	t.Setenv("CONFIG_NAME", "default")
	t.Setenv("API_URL", "https://api.example.com")

	cfg, err := load("testdata")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.API.URL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONFIG_NAME", "broken")

	_, err := load("testdata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_Missing(t *testing.T) {
	t.Setenv("CONFIG_NAME", "absent")

	_, err := load("testdata")
	require.Error(t, err)
}
