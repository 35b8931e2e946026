package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. The factor set is stored as a JSONB array in
// completion order.
//
// AddFactor is a read-modify-write without locking: a session belongs to a
// single interactive user, so lost updates between two concurrent factor
// completions are accepted and at worst force the client to redo a step.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a fresh auth-session record.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.AuthSession) (models.AuthSession, error) {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(session.Factors)
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("encoding factors: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createSession, session.SessionID, session.UserID, raw, session.ExpiresAt)
	if err := row.Scan(&session.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error creating auth session")
		return models.AuthSession{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return session, nil
}

// GetSession returns a live session or [ErrSessionNotFound].
func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.AuthSession, error) {
	log := logger.FromContext(ctx)

	var session models.AuthSession
	var raw []byte

	row := r.db.QueryRowContext(ctx, getSession, sessionID)
	if err := row.Scan(&session.SessionID, &session.UserID, &raw, &session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthSession{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error reading auth session")
		return models.AuthSession{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := json.Unmarshal(raw, &session.Factors); err != nil {
		return models.AuthSession{}, fmt.Errorf("decoding factors: %w", err)
	}

	return session, nil
}

// AddFactor appends the factor to the session's completed set if it is not
// already present.
func (r *sessionRepository) AddFactor(ctx context.Context, sessionID string, factor models.Factor) error {
	log := logger.FromContext(ctx)

	session, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.HasFactor(factor) {
		return nil
	}
	session.Factors = append(session.Factors, factor)

	raw, err := json.Marshal(session.Factors)
	if err != nil {
		return fmt.Errorf("encoding factors: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, updateSessionFactors, raw, sessionID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.AddFactor").Msg("error updating auth session factors")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// DeleteExpired purges sessions whose expiry has passed.
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("error deleting expired auth sessions")
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return deleted, nil
}
