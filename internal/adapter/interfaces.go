// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the ArtConnect authentication server.
//
// The primary abstraction is [ServerAdapter], which decouples the client flow
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Blocci/Art-Connect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the ArtConnect
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping probes server liveness.
	Ping(ctx context.Context) error

	// Register creates an account and stores the issued bearer token via
	// SetToken.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login completes the password factor and stores the issued bearer token
	// via SetToken.
	Login(ctx context.Context, req models.LoginRequest) error

	// EnrollFace uploads a face descriptor as the enrolled template.
	EnrollFace(ctx context.Context, d models.Descriptor) error

	// VerifyFace submits a captured face descriptor and returns the match
	// outcome. A below-threshold attempt is reported in the response, not as
	// an error.
	VerifyFace(ctx context.Context, d models.Descriptor) (models.MatchResponse, error)

	// GetFaceTemplate fetches the caller's enrolled face template.
	GetFaceTemplate(ctx context.Context) (models.Descriptor, error)

	// EnrollVoice uploads a voice descriptor as the enrolled template.
	EnrollVoice(ctx context.Context, d models.Descriptor) error

	// EnrollVoiceAudio uploads a raw recording; the server extracts the
	// descriptor before enrollment.
	EnrollVoiceAudio(ctx context.Context, audio []byte, filename string) error

	// VerifyVoice submits a captured voice descriptor and returns the match
	// outcome.
	VerifyVoice(ctx context.Context, d models.Descriptor) (models.MatchResponse, error)

	// VerifyVoiceAudio submits a raw recording for server-side extraction
	// and verification.
	VerifyVoiceAudio(ctx context.Context, audio []byte, filename string) (models.MatchResponse, error)

	// GetVoiceTemplate fetches the caller's enrolled voice template.
	GetVoiceTemplate(ctx context.Context) (models.Descriptor, error)

	// AccessProtected requests the factor-gated resource. Succeeds only
	// after password, face, and voice have all been verified in this
	// session.
	AccessProtected(ctx context.Context) (models.AckResponse, error)
}
