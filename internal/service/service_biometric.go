package service

import (
	"context"
	"fmt"

	"github.com/Blocci/Art-Connect/internal/biometric"
	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/extractor"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/store"
	"github.com/Blocci/Art-Connect/models"
)

// biometricService is the concrete implementation of BiometricService.
// Every inbound descriptor passes the validation gate before it touches the
// matcher or the store; a successful enroll or verify marks the session's
// corresponding factor as completed.
type biometricService struct {
	userRepository     store.UserRepository
	templateRepository store.TemplateRepository
	sessionRepository  store.SessionRepository
	voiceExtractor     extractor.VoiceExtractor

	// policy holds the matcher thresholds and descriptor-length rules.
	policy biometric.Policy

	logger *logger.Logger
}

// NewBiometricService constructs a BiometricService wired to the given
// repositories, the voice-embedding client, and the matcher policy derived
// from cfg.
func NewBiometricService(storages store.Storages, voiceExtractor extractor.VoiceExtractor, cfg config.Biometrics, logger *logger.Logger) BiometricService {
	return &biometricService{
		userRepository:     storages.UserRepository,
		templateRepository: storages.TemplateRepository,
		sessionRepository:  storages.SessionRepository,
		voiceExtractor:     voiceExtractor,
		policy: biometric.Policy{
			FaceDistanceThreshold:    cfg.FaceDistanceThreshold,
			VoiceSimilarityThreshold: cfg.VoiceSimilarityThreshold,
			FaceDescriptorLength:     cfg.FaceDescriptorLength,
			VoiceDescriptorMinLength: cfg.VoiceDescriptorMinLength,
		},
		logger: logger,
	}
}

// EnrollFace validates the descriptor and stores it as the user's face
// template, overwriting any previous one under the optimistic version check.
// On success the session's face factor is marked completed.
//
// Returns biometric.ErrInvalidDescriptor (wrapped) for malformed input, or a
// store error (user missing, version conflict, backend fault).
func (b *biometricService) EnrollFace(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error {
	return b.enroll(ctx, userID, sessionID, d, models.FaceModality)
}

// EnrollVoice validates the descriptor and stores it as the user's voice
// template. On success the session's voice factor is marked completed.
func (b *biometricService) EnrollVoice(ctx context.Context, userID int64, sessionID string, d models.Descriptor) error {
	return b.enroll(ctx, userID, sessionID, d, models.VoiceModality)
}

// VerifyFace compares the captured descriptor against the enrolled face
// template and reports the Euclidean distance alongside the threshold
// decision. A match marks the session's face factor as completed.
//
// Returns store.ErrTemplateNotFound if the user has no enrolled face.
func (b *biometricService) VerifyFace(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (float64, bool, error) {
	log := logger.FromContext(ctx)

	if err := b.policy.Validate(d, models.FaceModality); err != nil {
		return biometric.MismatchDistance, false, err
	}

	template, err := b.templateRepository.GetFaceDescriptor(ctx, userID)
	if err != nil {
		return biometric.MismatchDistance, false, fmt.Errorf("loading face template: %w", err)
	}

	distance, match := b.policy.MatchFace(d, template)
	log.Debug().
		Int64("user_id", userID).
		Float64("distance", distance).
		Bool("match", match).
		Msg("face verification attempt")

	if match {
		if err = b.sessionRepository.AddFactor(ctx, sessionID, models.FactorFace); err != nil {
			return biometric.MismatchDistance, false, fmt.Errorf("recording face factor: %w", err)
		}
	}

	return distance, match, nil
}

// VerifyVoice compares the captured descriptor against the enrolled voice
// template and reports the cosine similarity alongside the threshold
// decision. A match marks the session's voice factor as completed.
func (b *biometricService) VerifyVoice(ctx context.Context, userID int64, sessionID string, d models.Descriptor) (float64, bool, error) {
	log := logger.FromContext(ctx)

	if err := b.policy.Validate(d, models.VoiceModality); err != nil {
		return biometric.MismatchSimilarity, false, err
	}

	template, err := b.templateRepository.GetVoiceDescriptor(ctx, userID)
	if err != nil {
		return biometric.MismatchSimilarity, false, fmt.Errorf("loading voice template: %w", err)
	}

	similarity, match := b.policy.MatchVoice(d, template)
	log.Debug().
		Int64("user_id", userID).
		Float64("similarity", similarity).
		Bool("match", match).
		Msg("voice verification attempt")

	if match {
		if err = b.sessionRepository.AddFactor(ctx, sessionID, models.FactorVoice); err != nil {
			return biometric.MismatchSimilarity, false, fmt.Errorf("recording voice factor: %w", err)
		}
	}

	return similarity, match, nil
}

// GetFaceTemplate returns the user's enrolled face template or
// store.ErrTemplateNotFound.
func (b *biometricService) GetFaceTemplate(ctx context.Context, userID int64) (models.Descriptor, error) {
	return b.templateRepository.GetFaceDescriptor(ctx, userID)
}

// GetVoiceTemplate returns the user's enrolled voice template or
// store.ErrTemplateNotFound.
func (b *biometricService) GetVoiceTemplate(ctx context.Context, userID int64) (models.Descriptor, error) {
	return b.templateRepository.GetVoiceDescriptor(ctx, userID)
}

// DescriptorFromAudio delegates raw-audio conversion to the external
// voice-embedding service. The resulting descriptor still passes the same
// validation gate as a directly submitted one.
func (b *biometricService) DescriptorFromAudio(ctx context.Context, audio []byte, filename string) (models.Descriptor, error) {
	return b.voiceExtractor.ExtractVoiceDescriptor(ctx, audio, filename)
}

// enroll runs the shared validate-then-save flow for both modalities and
// marks the modality's factor completed on success.
func (b *biometricService) enroll(ctx context.Context, userID int64, sessionID string, d models.Descriptor, modality models.Modality) error {
	log := logger.FromContext(ctx)

	if err := b.policy.Validate(d, modality); err != nil {
		return err
	}

	user, err := b.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading user for enrollment: %w", err)
	}

	var factor models.Factor
	switch modality {
	case models.FaceModality:
		_, err = b.templateRepository.SaveFaceDescriptor(ctx, userID, d, user.TemplateVersion)
		factor = models.FactorFace
	case models.VoiceModality:
		_, err = b.templateRepository.SaveVoiceDescriptor(ctx, userID, d, user.TemplateVersion)
		factor = models.FactorVoice
	default:
		return fmt.Errorf("%w: unknown modality %q", ErrInvalidDataProvided, modality)
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("modality", string(modality)).Msg("template enrollment failed")
		return fmt.Errorf("saving %s template: %w", modality, err)
	}

	if err = b.sessionRepository.AddFactor(ctx, sessionID, factor); err != nil {
		return fmt.Errorf("recording %s factor: %w", modality, err)
	}

	return nil
}
