package workers

import (
	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers: currently the
// expired auth-session cleaner.
func NewWorkers(storages store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionCleanupWorker(storages.SessionRepository, cfg.SessionCleanupInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
