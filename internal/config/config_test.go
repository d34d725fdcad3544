package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"BOT_TOKEN",
	"TELEGRAM_BOT_TOKEN",
	"WEBHOOK_URL",
	"PORT",
	"NEXT_WORD_DELAY",
	"CATALOG_PATH",
	"WEBHOOK_RETRIES",
	"OPENAI_API_KEY",
	"OPENAI_BASE_URL",
	"OPENAI_MODEL",
	"GENERATOR_TIMEOUT",
}

// unsetEnv removes every known key and restores the original values after the test
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		original, ok := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		require.NoError(t, os.Setenv(k, v))
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	unsetEnv(t)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	unsetEnv(t)
	setEnv(t, map[string]string{"BOT_TOKEN": "test_token"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "", cfg.WebhookURL)
	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, 300*time.Millisecond, cfg.NextWordDelay)
	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, 5, cfg.WebhookRetries)
	assert.Equal(t, "gpt-4o-mini", cfg.Generator.Model)
	assert.Equal(t, 5*time.Second, cfg.Generator.Timeout)
	assert.False(t, cfg.GeneratorEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	unsetEnv(t)
	setEnv(t, map[string]string{
		"BOT_TOKEN":         "test_token",
		"WEBHOOK_URL":       "https://bot.example.com/",
		"PORT":              "8080",
		"NEXT_WORD_DELAY":   "1s",
		"CATALOG_PATH":      "/etc/lexibot/words.yaml",
		"WEBHOOK_RETRIES":   "2",
		"OPENAI_API_KEY":    "sk-test",
		"OPENAI_BASE_URL":   "http://localhost:9999/v1",
		"OPENAI_MODEL":      "gpt-4.1-mini",
		"GENERATOR_TIMEOUT": "2s",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, "https://bot.example.com/webhook", cfg.WebhookEndpoint())
	assert.Equal(t, time.Second, cfg.NextWordDelay)
	assert.Equal(t, "/etc/lexibot/words.yaml", cfg.CatalogPath)
	assert.Equal(t, 2, cfg.WebhookRetries)
	assert.True(t, cfg.GeneratorEnabled())
	assert.Equal(t, "sk-test", cfg.Generator.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Generator.BaseURL)
	assert.Equal(t, "gpt-4.1-mini", cfg.Generator.Model)
	assert.Equal(t, 2*time.Second, cfg.Generator.Timeout)
}

func TestLoad_BotTokenSources(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
		wantErr  bool
	}{
		{
			name:     "fallback when BOT_TOKEN unset",
			env:      map[string]string{"TELEGRAM_BOT_TOKEN": "fallback_token"},
			expected: "fallback_token",
		},
		{
			name:     "fallback when BOT_TOKEN is whitespace",
			env:      map[string]string{"BOT_TOKEN": "  \t", "TELEGRAM_BOT_TOKEN": "fallback_token"},
			expected: "fallback_token",
		},
		{
			name:     "BOT_TOKEN wins and is trimmed",
			env:      map[string]string{"BOT_TOKEN": " primary_token\n", "TELEGRAM_BOT_TOKEN": "fallback_token"},
			expected: "primary_token",
		},
		{
			name:     "fallback is trimmed",
			env:      map[string]string{"TELEGRAM_BOT_TOKEN": " fallback_token "},
			expected: "fallback_token",
		},
		{
			name:    "both whitespace",
			env:     map[string]string{"BOT_TOKEN": " ", "TELEGRAM_BOT_TOKEN": " "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t)
			setEnv(t, tt.env)

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "BOT_TOKEN")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.BotToken)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{
			name:     "malformed delay",
			env:      map[string]string{"NEXT_WORD_DELAY": "soon"},
			contains: "failed to process env",
		},
		{
			name:     "negative delay",
			env:      map[string]string{"NEXT_WORD_DELAY": "-1s"},
			contains: "NEXT_WORD_DELAY",
		},
		{
			name:     "zero retries",
			env:      map[string]string{"WEBHOOK_RETRIES": "0"},
			contains: "WEBHOOK_RETRIES",
		},
		{
			name:     "zero generator timeout",
			env:      map[string]string{"GENERATOR_TIMEOUT": "0s"},
			contains: "GENERATOR_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t)
			setEnv(t, map[string]string{"BOT_TOKEN": "test_token"})
			setEnv(t, tt.env)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestConfig_WebhookEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "no trailing slash", url: "https://bot.example.com", expected: "https://bot.example.com/webhook"},
		{name: "trailing slash", url: "https://bot.example.com/", expected: "https://bot.example.com/webhook"},
		{name: "several trailing slashes", url: "https://bot.example.com//", expected: "https://bot.example.com/webhook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{WebhookURL: tt.url}
			assert.Equal(t, tt.expected, cfg.WebhookEndpoint())
		})
	}
}
