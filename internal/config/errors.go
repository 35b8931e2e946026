package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after all sources have been merged.
var (
	// ErrInvalidAuthConfigs indicates missing token settings
	// (sign key, issuer, or a non-positive token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidBiometricsConfigs indicates out-of-range matcher thresholds
	// or non-positive descriptor-length rules.
	ErrInvalidBiometricsConfigs = errors.New("invalid biometrics configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidExtractorConfigs indicates invalid extractor settings
	// (missing base URL or a non-positive timeout).
	ErrInvalidExtractorConfigs = errors.New("invalid extractor configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
