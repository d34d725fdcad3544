package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lexibot/internal/catalog"
	"lexibot/internal/config"
	"lexibot/internal/generator"
	"lexibot/internal/handler"
	"lexibot/internal/middleware"
	"lexibot/internal/repository/memory"
	"lexibot/internal/scheduler"
	"lexibot/internal/server"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Lexibot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Load word catalog
	words, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("Failed to load word catalog", zap.Error(err))
	}

	// Initialize repositories and services
	sessionRepo := memory.NewSessionRepo()
	sessionService := service.NewSessionService(sessionRepo)

	var examples service.ExampleGenerator
	if cfg.GeneratorEnabled() {
		examples = generator.NewClient(generator.Config{
			APIKey:  cfg.Generator.APIKey,
			BaseURL: cfg.Generator.BaseURL,
			Model:   cfg.Generator.Model,
			Timeout: cfg.Generator.Timeout,
		})
		logger.Info("Example generation enabled", zap.String("model", cfg.Generator.Model))
	} else {
		logger.Warn("OPENAI_API_KEY is not set, example generation disabled")
	}

	trainer := service.NewTrainerService(sessionService, words, examples, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token: cfg.BotToken,
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Telegram handler error", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize handler
	sched := scheduler.New(logger)
	bot.Use(middleware.UpdateLogger(logger))

	h := handler.NewHandler(bot, trainer, sched, cfg.NextWordDelay, logger)
	h.RegisterHandlers()

	if err := bot.SetCommands(handler.Commands()); err != nil {
		logger.Warn("Failed to set bot commands", zap.Error(err))
	}

	logger.Info("Handlers registered")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Register webhook in background
	go registerWebhook(ctx, bot, cfg, logger)

	srv := server.New(cfg.ListenAddr(), bot, logger)
	if err := serve(ctx, srv, sched, logger); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// serve runs srv until ctx is cancelled or the server fails, then stops the scheduler.
// A listen or shutdown error is returned.
func serve(ctx context.Context, srv *server.Server, sched *scheduler.Scheduler, logger *zap.Logger) error {
	err := srv.Run(ctx)
	if ctx.Err() != nil {
		logger.Info("Shutdown signal received, stopping bot...")
	}

	// Graceful shutdown
	sched.Stop()
	return err
}

// loadCatalog reads the catalog file if one is configured, otherwise the embedded one
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// registerWebhook publishes the webhook URL, logging instead of exiting on failure
func registerWebhook(ctx context.Context, bot *tele.Bot, cfg *config.Config, logger *zap.Logger) {
	if cfg.WebhookURL == "" {
		logger.Warn("WEBHOOK_URL is not set, skipping webhook registration")
		return
	}

	if err := server.RegisterWebhook(ctx, bot, cfg.WebhookEndpoint(), cfg.WebhookRetries, logger); err != nil {
		logger.Error("Failed to register webhook", zap.Error(err))
	}
}
