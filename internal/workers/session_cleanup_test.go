package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/models"
)

// mockSessionRepo implements store.SessionRepository; only DeleteExpired is
// exercised by the worker.
type mockSessionRepo struct {
	deleteCount atomic.Int64
	deleteErr   error
}

func (m *mockSessionRepo) CreateSession(_ context.Context, s models.AuthSession) (models.AuthSession, error) {
	return s, nil
}

func (m *mockSessionRepo) GetSession(_ context.Context, sessionID string) (models.AuthSession, error) {
	return models.AuthSession{SessionID: sessionID}, nil
}

func (m *mockSessionRepo) AddFactor(_ context.Context, _ string, _ models.Factor) error {
	return nil
}

func (m *mockSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	m.deleteCount.Add(1)
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	return 2, nil
}

func TestSessionCleanupWorker_PurgesOnTick(t *testing.T) {
	repo := &mockSessionRepo{}
	w := NewSessionCleanupWorker(repo, 10*time.Millisecond, logger.Nop())

	w.Run()

	deadline := time.After(time.Second)
	for repo.deleteCount.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 cleanup runs, got %d", repo.deleteCount.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSessionCleanupWorker_SurvivesStorageErrors(t *testing.T) {
	repo := &mockSessionRepo{deleteErr: errors.New("connection refused")}
	w := NewSessionCleanupWorker(repo, 10*time.Millisecond, logger.Nop())

	w.Run()

	deadline := time.After(time.Second)
	for repo.deleteCount.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("worker stopped after an error; got %d runs", repo.deleteCount.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNewSessionCleanupWorker_DefaultInterval(t *testing.T) {
	w := NewSessionCleanupWorker(&mockSessionRepo{}, 0, logger.Nop())

	if w.interval != 10*time.Minute {
		t.Errorf("expected default interval of 10m, got %v", w.interval)
	}
}
