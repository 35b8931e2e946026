package models

import "time"

// Factor names a single authentication factor within the three-factor
// sequence. Stored in the auth_sessions table as a text array.
type Factor string

const (
	// FactorPassword is completed at register/login when the credential
	// check passes and the token is issued.
	FactorPassword Factor = "password"

	// FactorFace is completed on successful face enrollment or verification.
	FactorFace Factor = "face"

	// FactorVoice is completed on successful voice enrollment or verification.
	FactorVoice Factor = "voice"
)

// AllFactors is the full set a session must complete before the server
// grants access to factor-gated resources.
var AllFactors = []Factor{FactorPassword, FactorFace, FactorVoice}

// AuthSession is the server-side record of one authentication flow.
// It is keyed by the token's "jti" claim and tracks which factors the
// client has actually completed, so that a password-only token cannot
// reach resources that require the full factor sequence.
type AuthSession struct {
	// SessionID matches the "jti" claim of the issued token.
	SessionID string `json:"session_id"`

	// UserID is the account the session belongs to.
	UserID int64 `json:"-"`

	// Factors is the set of completed factors, in completion order.
	Factors []Factor `json:"factors"`

	// ExpiresAt mirrors the token expiry; rows past this instant are
	// ignored by lookups and purged by the cleanup worker.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is when the credential step passed and the token was issued.
	CreatedAt time.Time `json:"created_at"`
}

// HasFactor reports whether the given factor has been completed.
func (s AuthSession) HasFactor(factor Factor) bool {
	for _, f := range s.Factors {
		if f == factor {
			return true
		}
	}
	return false
}

// Complete reports whether every factor in required has been completed.
func (s AuthSession) Complete(required ...Factor) bool {
	for _, f := range required {
		if !s.HasFactor(f) {
			return false
		}
	}
	return true
}
