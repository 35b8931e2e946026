package workers

import (
	"context"
	"time"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/store"
)

// SessionCleanupWorker periodically purges expired auth-session rows.
// Lookups already ignore expired sessions, so the worker only reclaims
// storage; a missed tick never affects correctness.
type SessionCleanupWorker struct {
	sessionRepository store.SessionRepository
	interval          time.Duration
	logger            *logger.Logger
}

// NewSessionCleanupWorker constructs a cleanup worker running every
// interval. A non-positive interval falls back to ten minutes.
func NewSessionCleanupWorker(sessionRepository store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionCleanupWorker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &SessionCleanupWorker{
		sessionRepository: sessionRepository,
		interval:          interval,
		logger:            logger,
	}
}

// Run starts the cleanup loop in a background goroutine and returns
// immediately.
func (w *SessionCleanupWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting auth-session cleanup worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.cleanup()
		}
	}()
}

func (w *SessionCleanupWorker) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := w.sessionRepository.DeleteExpired(ctx)
	if err != nil {
		w.logger.Err(err).Msg("auth-session cleanup failed")
		return
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("purged expired auth sessions")
	}
}
