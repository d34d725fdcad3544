package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	// WebhookPath is where the platform delivers updates
	WebhookPath = "/webhook"

	maxUpdateSize   = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// UpdateProcessor dispatches a decoded update. *tele.Bot satisfies it.
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

// Server exposes the liveness and webhook endpoints
type Server struct {
	http      *http.Server
	processor UpdateProcessor
	logger    *zap.Logger
}

// New creates a server listening on addr
func New(addr string, processor UpdateProcessor, logger *zap.Logger) *Server {
	s := &Server{
		processor: processor,
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST "+WebhookPath, s.handleWebhook)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           Chain(Recovery(logger), RequestLogger(logger))(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Bot is running"))
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tele.Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateSize)).Decode(&update); err != nil {
		s.logger.Warn("Failed to decode update", zap.Error(err))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.processor.ProcessUpdate(update)
	w.WriteHeader(http.StatusOK)
}
