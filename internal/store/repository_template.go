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

// templateRepository is the PostgreSQL-backed implementation of
// [TemplateRepository]. Templates live as JSONB columns on the users table;
// every save bumps the shared template_version under an optimistic check.
type templateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTemplateRepository constructs a [TemplateRepository] backed by the
// provided database connection and logger.
func NewTemplateRepository(db *DB, logger *logger.Logger) TemplateRepository {
	logger.Debug().Msg("creating template repository")
	return &templateRepository{
		db:     db,
		logger: logger,
	}
}

// SaveFaceDescriptor overwrites the user's face template if the stored
// template version still equals expectedVersion.
func (r *templateRepository) SaveFaceDescriptor(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error) {
	return r.saveDescriptor(ctx, saveFaceDescriptor, userID, d, expectedVersion)
}

// SaveVoiceDescriptor overwrites the user's voice template if the stored
// template version still equals expectedVersion.
func (r *templateRepository) SaveVoiceDescriptor(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error) {
	return r.saveDescriptor(ctx, saveVoiceDescriptor, userID, d, expectedVersion)
}

// GetFaceDescriptor returns the enrolled face template or
// [ErrTemplateNotFound].
func (r *templateRepository) GetFaceDescriptor(ctx context.Context, userID int64) (models.Descriptor, error) {
	return r.getDescriptor(ctx, getFaceDescriptor, userID)
}

// GetVoiceDescriptor returns the enrolled voice template or
// [ErrTemplateNotFound].
func (r *templateRepository) GetVoiceDescriptor(ctx context.Context, userID int64) (models.Descriptor, error) {
	return r.getDescriptor(ctx, getVoiceDescriptor, userID)
}

// saveDescriptor runs the versioned overwrite shared by both modalities.
//
// A zero-row result means either the user does not exist or the version
// check failed; a follow-up version lookup distinguishes the two so that
// callers receive the precise sentinel.
func (r *templateRepository) saveDescriptor(ctx context.Context, query string, userID int64, d models.Descriptor, expectedVersion int64) (int64, error) {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(d)
	if err != nil {
		return 0, fmt.Errorf("encoding descriptor: %w", err)
	}

	var newVersion int64
	err = r.db.QueryRowContext(ctx, query, raw, userID, expectedVersion).Scan(&newVersion)
	if err == nil {
		return newVersion, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*templateRepository.saveDescriptor").Msg("error saving descriptor")
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// No row updated: user missing or stale version.
	var currentVersion int64
	switch err = r.db.QueryRowContext(ctx, getTemplateVersion, userID).Scan(&currentVersion); {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*templateRepository.saveDescriptor").Msg("error reading template version")
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		log.Warn().
			Int64("user_id", userID).
			Int64("expected_version", expectedVersion).
			Int64("current_version", currentVersion).
			Msg("concurrent template overwrite detected")
		return 0, ErrTemplateVersionConflict
	}
}

// getDescriptor reads one descriptor column. NULL and empty templates are
// both reported as [ErrTemplateNotFound].
func (r *templateRepository) getDescriptor(ctx context.Context, query string, userID int64) (models.Descriptor, error) {
	log := logger.FromContext(ctx)

	var raw []byte
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*templateRepository.getDescriptor").Msg("error reading descriptor")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	d, err := unmarshalDescriptor(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding descriptor: %w", err)
	}
	if d.IsZero() {
		return nil, ErrTemplateNotFound
	}

	return d, nil
}

// unmarshalDescriptor decodes a JSONB descriptor column. NULL columns decode
// to a nil descriptor, which callers treat as "not enrolled".
func unmarshalDescriptor(raw []byte) (models.Descriptor, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var d models.Descriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}

	return d, nil
}
