package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped in [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash)

	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.TemplateVersion, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	return user, nil
}

// FindUserByUsername retrieves the user record matching the given handle,
// including the enrolled biometric templates.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped in [ErrStoreUnavailable].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, findUserByUsername, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user by username")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return foundUser, nil
}

// GetUserByID retrieves the user record matching the internal identifier.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, getUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error finding user by id")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return foundUser, nil
}

// scanUser reads one full user row, decoding the JSONB descriptor columns.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var faceRaw, voiceRaw []byte

	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash,
		&faceRaw, &voiceRaw, &user.TemplateVersion, &user.CreatedAt); err != nil {
		return models.User{}, err
	}

	var err error
	if user.FaceDescriptor, err = unmarshalDescriptor(faceRaw); err != nil {
		return models.User{}, fmt.Errorf("decoding face descriptor: %w", err)
	}
	if user.VoiceDescriptor, err = unmarshalDescriptor(voiceRaw); err != nil {
		return models.User{}, fmt.Errorf("decoding voice descriptor: %w", err)
	}

	return user, nil
}
