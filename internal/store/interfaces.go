package store

import (
	"context"

	"github.com/Blocci/Art-Connect/models"
)

// UserRepository manages user identity records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Fails with ErrUsernameAlreadyExists on a duplicate
	// username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its unique handle.
	// Fails with ErrNoUserWasFound for unknown usernames.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetUserByID looks an account up by its internal identifier.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TemplateRepository manages the enrolled biometric templates stored on the
// user record. Each user holds at most one face and one voice template;
// enrollment always overwrites, never appends.
type TemplateRepository interface {
	// SaveFaceDescriptor overwrites the user's face template. The write
	// succeeds only if the stored template version still equals
	// expectedVersion, making racing overwrites detectable; the new
	// version is returned. Fails with ErrTemplateVersionConflict when the
	// check fails and ErrNoUserWasFound when the user does not exist.
	SaveFaceDescriptor(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error)

	// SaveVoiceDescriptor behaves like SaveFaceDescriptor for the voice
	// template.
	SaveVoiceDescriptor(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error)

	// GetFaceDescriptor returns the enrolled face template.
	// Fails with ErrTemplateNotFound when none is enrolled; an empty
	// stored descriptor is treated identically to an absent one.
	GetFaceDescriptor(ctx context.Context, userID int64) (models.Descriptor, error)

	// GetVoiceDescriptor returns the enrolled voice template.
	GetVoiceDescriptor(ctx context.Context, userID int64) (models.Descriptor, error)
}

// SessionRepository manages the server-side auth-session records that track
// which authentication factors a token's session has completed.
type SessionRepository interface {
	// CreateSession persists a fresh session keyed by the token's jti.
	CreateSession(ctx context.Context, session models.AuthSession) (models.AuthSession, error)

	// GetSession returns a live (non-expired) session.
	// Fails with ErrSessionNotFound for unknown or expired session ids.
	GetSession(ctx context.Context, sessionID string) (models.AuthSession, error)

	// AddFactor marks the given factor as completed for the session.
	// Adding an already completed factor is a no-op.
	AddFactor(ctx context.Context, sessionID string, factor models.Factor) error

	// DeleteExpired purges sessions whose expiry has passed and returns
	// the number of rows removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
