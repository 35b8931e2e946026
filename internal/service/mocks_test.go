package service

import (
	"context"
	"errors"

	"github.com/Blocci/Art-Connect/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	getUserByIDFn        func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

// ─────────────────────────────────────────────
// Mock: store.TemplateRepository
// ─────────────────────────────────────────────

type mockTemplateRepository struct {
	saveFaceFn  func(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error)
	saveVoiceFn func(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error)
	getFaceFn   func(ctx context.Context, userID int64) (models.Descriptor, error)
	getVoiceFn  func(ctx context.Context, userID int64) (models.Descriptor, error)
}

func (m *mockTemplateRepository) SaveFaceDescriptor(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error) {
	if m.saveFaceFn != nil {
		return m.saveFaceFn(ctx, userID, d, expectedVersion)
	}
	return expectedVersion + 1, nil
}

func (m *mockTemplateRepository) SaveVoiceDescriptor(ctx context.Context, userID int64, d models.Descriptor, expectedVersion int64) (int64, error) {
	if m.saveVoiceFn != nil {
		return m.saveVoiceFn(ctx, userID, d, expectedVersion)
	}
	return expectedVersion + 1, nil
}

func (m *mockTemplateRepository) GetFaceDescriptor(ctx context.Context, userID int64) (models.Descriptor, error) {
	if m.getFaceFn != nil {
		return m.getFaceFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) GetVoiceDescriptor(ctx context.Context, userID int64) (models.Descriptor, error) {
	if m.getVoiceFn != nil {
		return m.getVoiceFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	createSessionFn func(ctx context.Context, session models.AuthSession) (models.AuthSession, error)
	getSessionFn    func(ctx context.Context, sessionID string) (models.AuthSession, error)
	addFactorFn     func(ctx context.Context, sessionID string, factor models.Factor) error
	deleteExpiredFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.AuthSession) (models.AuthSession, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	return session, nil
}

func (m *mockSessionRepository) GetSession(ctx context.Context, sessionID string) (models.AuthSession, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(ctx, sessionID)
	}
	return models.AuthSession{SessionID: sessionID}, nil
}

func (m *mockSessionRepository) AddFactor(ctx context.Context, sessionID string, factor models.Factor) error {
	if m.addFactorFn != nil {
		return m.addFactorFn(ctx, sessionID, factor)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: extractor.VoiceExtractor
// ─────────────────────────────────────────────

type mockVoiceExtractor struct {
	extractFn func(ctx context.Context, audio []byte, filename string) (models.Descriptor, error)
}

func (m *mockVoiceExtractor) ExtractVoiceDescriptor(ctx context.Context, audio []byte, filename string) (models.Descriptor, error) {
	if m.extractFn != nil {
		return m.extractFn(ctx, audio, filename)
	}
	return nil, nil
}

var errStorage = errors.New("storage error")
