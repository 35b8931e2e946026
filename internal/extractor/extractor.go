// Package extractor talks to the external voice-embedding service that
// converts raw audio samples into fixed voice descriptors.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/models"
	"github.com/go-resty/resty/v2"
)

// ErrExtractionFailed covers every failure to obtain a descriptor from the
// extraction service: transport faults, non-2xx responses, and malformed
// response bodies. Callers map it to a bad-gateway condition.
var ErrExtractionFailed = errors.New("voice descriptor extraction failed")

// VoiceExtractor produces a voice descriptor from a raw audio recording.
type VoiceExtractor interface {
	ExtractVoiceDescriptor(ctx context.Context, audio []byte, filename string) (models.Descriptor, error)
}

type httpVoiceExtractor struct {
	client *resty.Client
	logger *logger.Logger
}

// descriptorPayload is the extraction service's response body.
type descriptorPayload struct {
	Descriptor models.Descriptor `json:"descriptor"`
}

// NewHTTPVoiceExtractor constructs a [VoiceExtractor] speaking to the
// embedding service over HTTP.
func NewHTTPVoiceExtractor(cfg config.Extractor, logger *logger.Logger) VoiceExtractor {
	if cfg.VoiceBaseURL == "" {
		cfg.VoiceBaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.VoiceBaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpVoiceExtractor{client: cli, logger: logger}
}

// ExtractVoiceDescriptor uploads the audio sample as a multipart form and
// returns the descriptor computed by the service. The service expects a
// mono 16 kHz WAV under the "audio" field.
func (e *httpVoiceExtractor) ExtractVoiceDescriptor(ctx context.Context, audio []byte, filename string) (models.Descriptor, error) {
	log := logger.FromContext(ctx)

	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio sample", ErrExtractionFailed)
	}
	if filename == "" {
		filename = "sample.wav"
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetFileReader("audio", filename, bytes.NewReader(audio)).
		Post("/extract-voice-descriptor")
	if err != nil {
		log.Err(err).Str("func", "*httpVoiceExtractor.ExtractVoiceDescriptor").Msg("extraction request failed")
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		log.Error().
			Int("status", resp.StatusCode()).
			Str("func", "*httpVoiceExtractor.ExtractVoiceDescriptor").
			Msg("extraction service returned non-OK status")
		return nil, fmt.Errorf("%w: http %d: %s", ErrExtractionFailed, resp.StatusCode(), body)
	}

	var payload descriptorPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrExtractionFailed, err)
	}
	if len(payload.Descriptor) == 0 {
		return nil, fmt.Errorf("%w: service returned empty descriptor", ErrExtractionFailed)
	}

	return payload.Descriptor, nil
}
