package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/store"
	"github.com/Blocci/Art-Connect/internal/utils"
	"github.com/Blocci/Art-Connect/models"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, bcrypt credential verification, and the JWT
// token lifecycle, and keeps the auth_sessions ledger in step with every
// issued token.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository persists the per-token record of completed factors.
	sessionRepository store.SessionRepository

	// uuidGenerator produces the "jti" claim values keying auth sessions.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// The backing auth session expires at the same instant.
	tokenDuration time.Duration

	// bcryptCost is the bcrypt work factor applied at registration.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		uuidGenerator:     utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		bcryptCost:        cfg.BcryptCost,
		logger:            logger,
	}
}

// Register creates a new user account and issues its first token.
//
// The plaintext password is hashed with bcrypt before persistence and never
// stored or logged as-is. On success the new session has the password factor
// completed; the remaining factors stay open until the biometric steps pass.
//
// Returns the persisted user and a signed token, or:
//   - ErrInvalidDataProvided if username, email, or password is empty.
//   - store.ErrUsernameAlreadyExists if the handle is taken.
//   - A wrapped storage error if persistence fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(ctx, registeredUser.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user and issues a fresh token.
//
// Lookup failures and bcrypt mismatches are folded into the single
// ErrInvalidCredentials sentinel so that responses cannot be used to probe
// which usernames exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(ctx, foundUser.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Session returns the auth-session record keyed by the token's "jti" claim.
// Expired and unknown sessions both surface as store.ErrSessionNotFound.
func (a *authService) Session(ctx context.Context, sessionID string) (models.AuthSession, error) {
	return a.sessionRepository.GetSession(ctx, sessionID)
}

// issueToken signs a JWT carrying a fresh "jti" claim and records the
// matching auth session with the password factor completed.
func (a *authService) issueToken(ctx context.Context, userID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	sessionID := a.uuidGenerator.Generate()

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, sessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	_, err = a.sessionRepository.CreateSession(ctx, models.AuthSession{
		SessionID: sessionID,
		UserID:    userID,
		Factors:   []models.Factor{models.FactorPassword},
		ExpiresAt: token.ExpiresAt.Time,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("auth session creation failed")
		return models.Token{}, fmt.Errorf("auth session creation failed: %w", err)
	}

	return token, nil
}
