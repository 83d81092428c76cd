package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"raahi/pkg/utils"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CORS_ORIGIN", "LLM_PROVIDER", "LLM_API_KEY", "LLM_MODEL", "OPENAI_API_KEY", "GEMINI_API_KEY", "TOKEN_EXPIRES_IN", "APP_ENV", "NODE_ENV", "API_KEY", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8800", cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "off", cfg.LLM.Provider)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Empty(t, cfg.Data.APIKey)
}

func TestFromEnv_OpenAIKeyFallback(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := FromEnv()

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, utils.DefaultOpenAIModel, cfg.LLM.Model)
}

func TestFromEnv_GeminiAndOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("CORS_ORIGIN", "https://a.example, https://b.example")
	t.Setenv("TOKEN_EXPIRES_IN", "2h")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("APP_ENV", "")

	cfg := FromEnv()

	assert.Equal(t, "g-key", cfg.LLM.APIKey)
	assert.Equal(t, utils.DefaultGeminiModel, cfg.LLM.Model)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.CookieSecure)
}
