package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweeper purges expired state and reports how many entries were removed.
type Sweeper interface {
	Sweep(ctx context.Context) int
}

// SessionSweeper periodically removes expired customer sessions.
type SessionSweeper struct {
	store    Sweeper
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionSweeper constructs a sweeper running every interval.
func NewSessionSweeper(store Sweeper, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{store: store, interval: interval, logger: logger}
}

// Start launches background sweeping. Repeated calls are no-ops while running.
func (s *SessionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop halts sweeping and waits for the loop to exit.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *SessionSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed := s.store.Sweep(ctx)
	if removed > 0 {
		s.logger.Info("expired sessions removed", slog.Int("count", removed))
		return
	}
	s.logger.Debug("session sweep found nothing to remove")
}
