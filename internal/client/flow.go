// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Blocci/Art-Connect/internal/adapter"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/models"
)

// State is the client-side authentication progress. The server grants a
// token after the password factor and records completed factors in the
// session; the flow tracks where the user is so steps run in order.
type State int

const (
	// AwaitingPassword is the initial state: no token yet.
	AwaitingPassword State = iota

	// AwaitingFace follows a successful registration or login.
	AwaitingFace

	// AwaitingVoice follows a successful face enroll or verify.
	AwaitingVoice

	// Authenticated is the terminal state: all three factors completed.
	Authenticated
)

func (s State) String() string {
	switch s {
	case AwaitingPassword:
		return "awaiting password"
	case AwaitingFace:
		return "awaiting face"
	case AwaitingVoice:
		return "awaiting voice"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("unknown state %d", int(s))
	}
}

// Mode selects how the biometric steps behave: registration enrolls a new
// template, login verifies against the enrolled one.
type Mode int

const (
	ModeRegister Mode = iota
	ModeLogin
)

// ErrOutOfOrder is returned when a step is invoked from the wrong state,
// e.g. submitting a voice sample before the face factor is completed.
var ErrOutOfOrder = errors.New("authentication step out of order")

// Flow drives the three-factor authentication sequence
// AwaitingPassword → AwaitingFace → AwaitingVoice → Authenticated against a
// [adapter.ServerAdapter].
//
// A failed step never advances the state: the caller may re-capture and
// retry the same step. Only bad credentials at the first step require
// starting over, and that step IS the start.
//
// Flow is not safe for concurrent use; a flow belongs to one interactive
// session.
type Flow struct {
	server adapter.ServerAdapter
	mode   Mode
	state  State

	logger *logger.Logger
}

// NewFlow returns a flow at the initial state.
func NewFlow(server adapter.ServerAdapter, mode Mode, logger *logger.Logger) *Flow {
	return &Flow{server: server, mode: mode, state: AwaitingPassword, logger: logger}
}

// State reports the current progress.
func (f *Flow) State() State {
	return f.state
}

// Mode reports whether the flow enrolls or verifies biometric factors.
func (f *Flow) Mode() Mode {
	return f.mode
}

// SubmitRegistration completes the password factor by creating an account.
// Valid only in ModeRegister at AwaitingPassword. On success the server
// token is stored in the adapter and the flow advances to AwaitingFace.
func (f *Flow) SubmitRegistration(ctx context.Context, req models.RegisterRequest) error {
	if f.mode != ModeRegister {
		return fmt.Errorf("%w: registration in login mode", ErrOutOfOrder)
	}
	if f.state != AwaitingPassword {
		return fmt.Errorf("%w: registration from state %q", ErrOutOfOrder, f.state)
	}

	if err := f.server.Register(ctx, req); err != nil {
		return err
	}

	f.state = AwaitingFace
	f.logger.Debug().Str("username", req.Username).Msg("password factor completed (registration)")
	return nil
}

// SubmitLogin completes the password factor with existing credentials.
// Valid only in ModeLogin at AwaitingPassword. On success the server token
// is stored in the adapter and the flow advances to AwaitingFace.
func (f *Flow) SubmitLogin(ctx context.Context, req models.LoginRequest) error {
	if f.mode != ModeLogin {
		return fmt.Errorf("%w: login in registration mode", ErrOutOfOrder)
	}
	if f.state != AwaitingPassword {
		return fmt.Errorf("%w: login from state %q", ErrOutOfOrder, f.state)
	}

	if err := f.server.Login(ctx, req); err != nil {
		return err
	}

	f.state = AwaitingFace
	f.logger.Debug().Str("username", req.Username).Msg("password factor completed (login)")
	return nil
}

// SubmitFace runs the face factor with a captured descriptor. In
// ModeRegister the descriptor is enrolled as the template; in ModeLogin it
// is verified against the enrolled one. The flow advances to AwaitingVoice
// on enrollment success or a verified match. A below-threshold attempt is
// returned with Match=false and leaves the state unchanged so the user can
// re-capture.
func (f *Flow) SubmitFace(ctx context.Context, d models.Descriptor) (models.MatchResponse, error) {
	if f.state != AwaitingFace {
		return models.MatchResponse{}, fmt.Errorf("%w: face step from state %q", ErrOutOfOrder, f.state)
	}

	if f.mode == ModeRegister {
		if err := f.server.EnrollFace(ctx, d); err != nil {
			return models.MatchResponse{}, err
		}
		f.state = AwaitingVoice
		return models.MatchResponse{Match: true}, nil
	}

	result, err := f.server.VerifyFace(ctx, d)
	if err != nil {
		return models.MatchResponse{}, err
	}
	if result.Match {
		f.state = AwaitingVoice
	}
	return result, nil
}

// SubmitVoice runs the voice factor with a captured descriptor, with the
// same enroll/verify split and retry semantics as SubmitFace. A successful
// step reaches the terminal Authenticated state.
func (f *Flow) SubmitVoice(ctx context.Context, d models.Descriptor) (models.MatchResponse, error) {
	if f.state != AwaitingVoice {
		return models.MatchResponse{}, fmt.Errorf("%w: voice step from state %q", ErrOutOfOrder, f.state)
	}

	if f.mode == ModeRegister {
		if err := f.server.EnrollVoice(ctx, d); err != nil {
			return models.MatchResponse{}, err
		}
		f.state = Authenticated
		return models.MatchResponse{Match: true}, nil
	}

	result, err := f.server.VerifyVoice(ctx, d)
	if err != nil {
		return models.MatchResponse{}, err
	}
	if result.Match {
		f.state = Authenticated
	}
	return result, nil
}

// SubmitVoiceAudio runs the voice factor from a raw recording, letting the
// server extract the descriptor. Semantics match SubmitVoice.
func (f *Flow) SubmitVoiceAudio(ctx context.Context, audio []byte, filename string) (models.MatchResponse, error) {
	if f.state != AwaitingVoice {
		return models.MatchResponse{}, fmt.Errorf("%w: voice step from state %q", ErrOutOfOrder, f.state)
	}

	if f.mode == ModeRegister {
		if err := f.server.EnrollVoiceAudio(ctx, audio, filename); err != nil {
			return models.MatchResponse{}, err
		}
		f.state = Authenticated
		return models.MatchResponse{Match: true}, nil
	}

	result, err := f.server.VerifyVoiceAudio(ctx, audio, filename)
	if err != nil {
		return models.MatchResponse{}, err
	}
	if result.Match {
		f.state = Authenticated
	}
	return result, nil
}

// AccessProtected requests the factor-gated resource. Valid only in the
// Authenticated state; the server re-checks completed factors on its side.
func (f *Flow) AccessProtected(ctx context.Context) (models.AckResponse, error) {
	if f.state != Authenticated {
		return models.AckResponse{}, fmt.Errorf("%w: protected access from state %q", ErrOutOfOrder, f.state)
	}
	return f.server.AccessProtected(ctx)
}
