package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is work run after a delay. ctx is cancelled when the scheduler stops.
type Task func(ctx context.Context)

// Scheduler runs delayed tasks and cancels pending ones on Stop
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *zap.Logger

	mu      sync.Mutex
	stopped bool
}

// New creates a running scheduler
func New(logger *zap.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// After runs task once delay has elapsed. It reports false if the scheduler is stopped.
func (s *Scheduler) After(delay time.Duration, task Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}

	s.wg.Add(1)
	go s.run(delay, task)
	return true
}

func (s *Scheduler) run(delay time.Duration, task Task) {
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Scheduled task panicked", zap.Any("panic", r))
		}
	}()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-s.ctx.Done():
		return
	case <-timer.C:
	}

	task(s.ctx)
}

// Stop cancels pending tasks and waits for running ones to return
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}
