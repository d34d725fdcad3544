package server

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// WebhookRegistrar registers the public webhook URL. *tele.Bot satisfies it.
type WebhookRegistrar interface {
	SetWebhook(w *tele.Webhook) error
}

var retryInterval = time.Second

// RegisterWebhook sets the webhook, retrying with exponential backoff up to attempts times
func RegisterWebhook(ctx context.Context, registrar WebhookRegistrar, endpoint string, attempts int, logger *zap.Logger) error {
	if attempts < 1 {
		attempts = 1
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = retryInterval
	expo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(attempts-1)), ctx)

	attempt := 0
	operation := func() error {
		attempt++
		return registrar.SetWebhook(&tele.Webhook{
			Endpoint: &tele.WebhookEndpoint{PublicURL: endpoint},
		})
	}
	notify := func(err error, next time.Duration) {
		logger.Warn("Webhook registration failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return fmt.Errorf("register webhook after %d attempts: %w", attempt, err)
	}

	logger.Info("Webhook registered", zap.String("url", endpoint), zap.Int("attempts", attempt))
	return nil
}
