package service

import (
	"context"

	"github.com/Blocci/Art-Connect/models"
)

// AuthService covers the credential factor and the token lifecycle: account
// creation, password verification, token issuance with its backing
// auth-session record, and token parsing.
type AuthService interface {
	// Register creates a new account and issues a token whose session has
	// the password factor already completed.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)

	// Login verifies the credential pair and issues a fresh token and
	// auth session. Unknown usernames and wrong passwords both surface as
	// ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	// ParseToken validates a compact token string and returns the decoded
	// token. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Session returns the auth-session record backing a token's "jti"
	// claim, used to gate resources on completed factors.
	Session(ctx context.Context, sessionID string) (models.AuthSession, error)
}

// BiometricService covers template enrollment, verification, and retrieval
// for both biometric modalities, plus descriptor extraction from raw audio.
//
// Verification outcomes are reported as (score, match) pairs rather than
// errors: a below-threshold sample is a normal result, not a fault.
type BiometricService interface {
	EnrollFace(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error
	VerifyFace(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (distance float64, match bool, err error)
	GetFaceTemplate(ctx context.Context, userID int64) (models.Descriptor, error)

	EnrollVoice(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error
	VerifyVoice(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (similarity float64, match bool, err error)
	GetVoiceTemplate(ctx context.Context, userID int64) (models.Descriptor, error)

	// DescriptorFromAudio converts a raw audio recording into a voice
	// descriptor via the external embedding service.
	DescriptorFromAudio(ctx context.Context, audio []byte, filename string) (models.Descriptor, error)
}
