package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var sessionColumns = []string{"session_id", "user_id", "factors", "expires_at", "created_at"}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	session := models.AuthSession{
		SessionID: "0191b9e5-sid",
		UserID:    1,
		Factors:   []models.Factor{models.FactorPassword},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mock.ExpectQuery("INSERT INTO auth_sessions").
		WithArgs(session.SessionID, session.UserID, mustJSON(t, session.Factors), session.ExpiresAt).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	created, err := repo.CreateSession(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated")
	}
}

func TestGetSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	factors := []models.Factor{models.FactorPassword, models.FactorFace}

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("sid", 1, mustJSON(t, factors), time.Now().Add(time.Hour), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM auth_sessions").
		WithArgs("sid").
		WillReturnRows(rows)

	session, err := repo.GetSession(ctx, "sid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.HasFactor(models.FactorPassword) || !session.HasFactor(models.FactorFace) {
		t.Errorf("expected password+face factors, got %v", session.Factors)
	}
	if session.Complete(models.AllFactors...) {
		t.Error("session with two factors must not report complete")
	}
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	// Expired sessions fall out of the query and look identical to missing.
	mock.ExpectQuery("SELECT (.+) FROM auth_sessions").
		WithArgs("dead").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession(ctx, "dead")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAddFactor_AppendsNewFactor(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("sid", 1, mustJSON(t, []models.Factor{models.FactorPassword}), time.Now().Add(time.Hour), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM auth_sessions").
		WithArgs("sid").
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE auth_sessions").
		WithArgs(mustJSON(t, []models.Factor{models.FactorPassword, models.FactorFace}), "sid").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddFactor(ctx, "sid", models.FactorFace); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddFactor_IdempotentForCompletedFactor(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("sid", 1, mustJSON(t, []models.Factor{models.FactorPassword}), time.Now().Add(time.Hour), time.Now())

	// No UPDATE expected: the factor is already recorded.
	mock.ExpectQuery("SELECT (.+) FROM auth_sessions").
		WithArgs("sid").
		WillReturnRows(rows)

	if err := repo.AddFactor(ctx, "sid", models.FactorPassword); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddFactor_SessionGone(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM auth_sessions").
		WithArgs("dead").
		WillReturnError(sql.ErrNoRows)

	err := repo.AddFactor(ctx, "dead", models.FactorVoice)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteExpired(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM auth_sessions").
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted sessions, got %d", deleted)
	}
}

func TestDeleteExpired_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM auth_sessions").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.DeleteExpired(ctx)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
