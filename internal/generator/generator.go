// Package generator produces example sentences for vocabulary words
// through a chat-completion API.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Fallback replaces the example when generation fails
const Fallback = "😔 Не удалось придумать пример, попробуй позже."

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 5 * time.Second

	maxCompletionTokens = 120
)

// ErrEmptyCompletion is returned when the API answers without usable text
var ErrEmptyCompletion = errors.New("empty completion")

// Config holds completion API settings
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the completion API
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a completion client. Retries are disabled so that
// Timeout bounds the whole call.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}

	return &Client{
		api:     openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Example returns a generated sentence using word with its translation
func (c *Client) Example(ctx context.Context, word string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(word)),
		},
		MaxCompletionTokens: openai.Int(maxCompletionTokens),
		Temperature:         openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("completion request for %q: %w", word, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion for %q: %w", word, ErrEmptyCompletion)
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("completion for %q: %w", word, ErrEmptyCompletion)
	}

	return text, nil
}

// BuildPrompt creates the completion prompt for a single word
func BuildPrompt(word string) string {
	return fmt.Sprintf(`Write one short, natural English sentence that uses the word "%s".
On the next line give its Russian translation.
Output only the two lines, no quotes, no numbering, no explanations.`, word)
}
