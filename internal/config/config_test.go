package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "REDIS_DB", "PRIORITY_RULES_PATH", "PRIORITY_STRICT_RULES", "EVENTS_REDIS_ENABLED", "EVENTS_REDIS_CHANNEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Empty(t, cfg.Priority.RulesPath)
	assert.False(t, cfg.Priority.StrictRules)
	assert.False(t, cfg.Events.RedisEnabled)
	assert.Equal(t, "helpdesk.tickets.priority", cfg.Events.RedisChannel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PRIORITY_RULES_PATH", "/etc/helpdesk/rules.yaml")
	t.Setenv("PRIORITY_STRICT_RULES", "true")
	t.Setenv("EVENTS_REDIS_ENABLED", "1")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr())
	assert.Equal(t, "/etc/helpdesk/rules.yaml", cfg.Priority.RulesPath)
	assert.True(t, cfg.Priority.StrictRules)
	assert.True(t, cfg.Events.RedisEnabled)
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	_, err := Load()
	require.Error(t, err)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	t.Setenv("SOME_BOOL", "maybe")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	assert.True(t, getEnvAsBool("SOME_BOOL", true))

	var zero AppConfig
	assert.Equal(t, time.Duration(0), zero.RequestTimeout())
}
