package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEmbedded(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := FromEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, 90*time.Second, cfg.Server.Timeout)
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:5173")
	assert.Equal(t, "gemini-2.5-flash", cfg.GenAI.Model)
	assert.InDelta(t, 0.5, cfg.GenAI.Temperature, 0.0001)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Empty(t, cfg.GenAI.APIKey)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("SERVER_HTTPPORT", "8088")
	t.Setenv("GENAI_MODEL", "gemini-2.5-pro")

	cfg, err := FromEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.GenAI.APIKey)
	assert.Equal(t, "8088", cfg.Server.HTTPPort)
	assert.Equal(t, "gemini-2.5-pro", cfg.GenAI.Model)
}
