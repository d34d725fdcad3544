package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	BotToken       string        `envconfig:"BOT_TOKEN"`
	WebhookURL     string        `envconfig:"WEBHOOK_URL"`
	Port           string        `envconfig:"PORT" default:"10000"`
	NextWordDelay  time.Duration `envconfig:"NEXT_WORD_DELAY" default:"300ms"`
	CatalogPath    string        `envconfig:"CATALOG_PATH"`
	WebhookRetries int           `envconfig:"WEBHOOK_RETRIES" default:"5"`
	Generator      GeneratorConfig
}

// GeneratorConfig holds example sentence generator settings
type GeneratorConfig struct {
	APIKey  string        `envconfig:"OPENAI_API_KEY"`
	BaseURL string        `envconfig:"OPENAI_BASE_URL"`
	Model   string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"GENERATOR_TIMEOUT" default:"5s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	cfg.BotToken = strings.TrimSpace(cfg.BotToken)
	if cfg.BotToken == "" {
		cfg.BotToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.NextWordDelay < 0 {
		return fmt.Errorf("NEXT_WORD_DELAY must be >= 0")
	}
	if c.WebhookRetries < 1 {
		return fmt.Errorf("WEBHOOK_RETRIES must be >= 1")
	}
	if c.Generator.Timeout <= 0 {
		return fmt.Errorf("GENERATOR_TIMEOUT must be > 0")
	}
	return nil
}

// ListenAddr returns the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// WebhookEndpoint returns the public URL updates are delivered to
func (c *Config) WebhookEndpoint() string {
	return strings.TrimRight(c.WebhookURL, "/") + "/webhook"
}

// GeneratorEnabled reports whether example sentences can be generated
func (c *Config) GeneratorEnabled() bool {
	return strings.TrimSpace(c.Generator.APIKey) != ""
}
