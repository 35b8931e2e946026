package store

import (
	"context"

	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	UserRepository     UserRepository
	TemplateRepository TemplateRepository
	SessionRepository  SessionRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories onto the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		TemplateRepository: NewTemplateRepository(db, log),
		SessionRepository:  NewSessionRepository(db, log),
	}, nil
}
