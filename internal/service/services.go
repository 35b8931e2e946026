package service

import (
	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/extractor"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/store"
)

type Services struct {
	AuthService      AuthService
	BiometricService BiometricService
}

func NewServices(storages store.Storages, voiceExtractor extractor.VoiceExtractor, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.Auth, logger),
		BiometricService: NewBiometricService(storages, voiceExtractor, cfg.Biometrics, logger),
	}
}
