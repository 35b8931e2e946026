package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Biometrics.FaceDistanceThreshold <= 0 ||
		cfg.Biometrics.VoiceSimilarityThreshold <= 0 || cfg.Biometrics.VoiceSimilarityThreshold > 1 ||
		cfg.Biometrics.FaceDescriptorLength <= 0 ||
		cfg.Biometrics.VoiceDescriptorMinLength <= 0 {
		return ErrInvalidBiometricsConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Extractor.VoiceBaseURL == "" || cfg.Extractor.Timeout <= 0 {
		return ErrInvalidExtractorConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
