package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 2000, cfg.MaxMessageChars)
	assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)

	assert.Empty(t, cfg.Groq.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Groq.Model)
	assert.Equal(t, 0.4, cfg.Groq.Temperature)
	assert.Equal(t, 512, cfg.Groq.MaxTokens)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("CHAT_MAX_MESSAGE_CHARS", "500")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://saleh.dev, https://www.saleh.dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "gsk-test", cfg.Groq.APIKey)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, 500, cfg.MaxMessageChars)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"https://saleh.dev", "https://www.saleh.dev"}, cfg.CORSOrigins)
}

func TestLoadTrimsBaseURLSlash(t *testing.T) {
	t.Setenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
}

func TestLoadInvalidDurations(t *testing.T) {
	t.Run("bad session ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "yesterday")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_TTL")
	})

	t.Run("bad client timeout", func(t *testing.T) {
		t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_CLIENT_TIMEOUT")
	})

	t.Run("zero client timeout", func(t *testing.T) {
		t.Setenv("HTTP_CLIENT_TIMEOUT", "0")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoadInvalidMessageLimit(t *testing.T) {
	t.Setenv("CHAT_MAX_MESSAGE_CHARS", "-5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHAT_MAX_MESSAGE_CHARS")
}
