package http

import (
	"context"
	"testing"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/service"
	"github.com/Blocci/Art-Connect/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	sessionFn    func(ctx context.Context, sessionID string) (models.AuthSession, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Session(ctx context.Context, sessionID string) (models.AuthSession, error) {
	return m.sessionFn(ctx, sessionID)
}

// ─────────────────────────────────────────────
// Mock BiometricService
// ─────────────────────────────────────────────

type mockBiometricService struct {
	enrollFaceFn          func(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error
	verifyFaceFn          func(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (float64, bool, error)
	getFaceTemplateFn     func(ctx context.Context, userID int64) (models.Descriptor, error)
	enrollVoiceFn         func(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error
	verifyVoiceFn         func(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (float64, bool, error)
	getVoiceTemplateFn    func(ctx context.Context, userID int64) (models.Descriptor, error)
	descriptorFromAudioFn func(ctx context.Context, audio []byte, filename string) (models.Descriptor, error)
}

func (m *mockBiometricService) EnrollFace(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error {
	return m.enrollFaceFn(ctx, userID, sessionID, d)
}

func (m *mockBiometricService) VerifyFace(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (float64, bool, error) {
	return m.verifyFaceFn(ctx, userID, sessionID, d)
}

func (m *mockBiometricService) GetFaceTemplate(ctx context.Context, userID int64) (models.Descriptor, error) {
	return m.getFaceTemplateFn(ctx, userID)
}

func (m *mockBiometricService) EnrollVoice(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error {
	return m.enrollVoiceFn(ctx, userID, sessionID, d)
}

func (m *mockBiometricService) VerifyVoice(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (float64, bool, error) {
	return m.verifyVoiceFn(ctx, userID, sessionID, d)
}

func (m *mockBiometricService) GetVoiceTemplate(ctx context.Context, userID int64) (models.Descriptor, error) {
	return m.getVoiceTemplateFn(ctx, userID)
}

func (m *mockBiometricService) DescriptorFromAudio(ctx context.Context, audio []byte, filename string) (models.Descriptor, error) {
	return m.descriptorFromAudioFn(ctx, audio, filename)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks are
// allowed for handlers the test never reaches.
func newTestHandler(t *testing.T, auth service.AuthService, biometric service.BiometricService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService:      auth,
		BiometricService: biometric,
	}, logger.Nop())
}

// stubToken returns a models.Token with the given signed string and session.
func stubToken(signed, sessionID string) models.Token {
	return models.Token{SignedString: signed, UserID: 1, SessionID: sessionID}
}
