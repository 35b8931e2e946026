package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	// Sources are appended in precedence order, so the first path wins
	// (env over flags).
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority source.
// mergo only fills zero-valued fields, so anything set by env, flags, or
// JSON stays untouched.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())

	return b
}

// defaultConfig returns the built-in fallback values. The biometric numbers
// mirror the extractor models in use: 128-float face descriptors matched at
// Euclidean distance 0.6, voice embeddings of at least 10 floats matched at
// cosine similarity 0.75.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "artconnect-auth",
			TokenDuration: time.Hour,
			BcryptCost:    10,
		},
		Biometrics: Biometrics{
			FaceDistanceThreshold:    0.6,
			VoiceSimilarityThreshold: 0.75,
			FaceDescriptorLength:     128,
			VoiceDescriptorMinLength: 10,
		},
		Server: Server{
			HTTPAddress:    "localhost:3001",
			RequestTimeout: 30 * time.Second,
		},
		Extractor: Extractor{
			VoiceBaseURL: "http://localhost:5000",
			Timeout:      15 * time.Second,
		},
		Workers: Workers{
			SessionCleanupInterval: 10 * time.Minute,
		},
	}
}
