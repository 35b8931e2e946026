// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/utils"
	"github.com/Blocci/Art-Connect/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [ServerAdapter]. It issues GET /api/ping and returns an
// error if the server is unreachable or responds with a non-2xx status.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	if resp.IsError() {
		return mapHTTPError(resp.StatusCode(), resp.Body())
	}
	return nil
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if resp.IsError() {
		return mapHTTPError(resp.StatusCode(), resp.Body())
	}

	return h.storeTokenFromResponse(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/login, completing the password factor. On success the bearer
// token is extracted from the Authorization response header and stored via
// SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if resp.IsError() {
		return mapHTTPError(resp.StatusCode(), resp.Body())
	}

	return h.storeTokenFromResponse(resp)
}

// EnrollFace implements [ServerAdapter]. It POSTs the face descriptor to
// POST /api/enroll-face.
func (h *httpServerAdapter) EnrollFace(ctx context.Context, d models.Descriptor) error {
	return h.enroll(ctx, "/api/enroll-face", d)
}

// EnrollVoice implements [ServerAdapter]. It POSTs the voice descriptor to
// POST /api/enroll-voice.
func (h *httpServerAdapter) EnrollVoice(ctx context.Context, d models.Descriptor) error {
	return h.enroll(ctx, "/api/enroll-voice", d)
}

func (h *httpServerAdapter) enroll(ctx context.Context, endpoint string, d models.Descriptor) error {
	token := h.Token()
	if token == "" {
		return ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(models.DescriptorRequest{Descriptor: d}).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("enroll request: %w", err)
	}
	if resp.IsError() {
		return mapHTTPError(resp.StatusCode(), resp.Body())
	}
	return nil
}

// EnrollVoiceAudio implements [ServerAdapter]. It uploads the raw recording
// as a multipart form to POST /api/enroll-voice; the server extracts the
// descriptor before enrollment.
func (h *httpServerAdapter) EnrollVoiceAudio(ctx context.Context, audio []byte, filename string) error {
	token := h.Token()
	if token == "" {
		return ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetFileReader("audio", filename, bytes.NewReader(audio)).
		Post("/api/enroll-voice")
	if err != nil {
		return fmt.Errorf("enroll voice audio request: %w", err)
	}
	if resp.IsError() {
		return mapHTTPError(resp.StatusCode(), resp.Body())
	}
	return nil
}

// VerifyFace implements [ServerAdapter]. It POSTs the face descriptor to
// POST /api/verify-face and returns the match outcome. A 401 whose body is a
// match report (below-threshold attempt) is returned as a result with
// Match=false, not as an error.
func (h *httpServerAdapter) VerifyFace(ctx context.Context, d models.Descriptor) (models.MatchResponse, error) {
	return h.verify(ctx, "/api/verify-face", d)
}

// VerifyVoice implements [ServerAdapter]. It POSTs the voice descriptor to
// POST /api/verify-voice and returns the match outcome. A 401 whose body is
// a match report is returned as a result with Match=false, not as an error.
func (h *httpServerAdapter) VerifyVoice(ctx context.Context, d models.Descriptor) (models.MatchResponse, error) {
	return h.verify(ctx, "/api/verify-voice", d)
}

func (h *httpServerAdapter) verify(ctx context.Context, endpoint string, d models.Descriptor) (models.MatchResponse, error) {
	token := h.Token()
	if token == "" {
		return models.MatchResponse{}, ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(models.DescriptorRequest{Descriptor: d}).
		Post(endpoint)
	if err != nil {
		return models.MatchResponse{}, fmt.Errorf("verify request: %w", err)
	}

	return decodeMatchResponse(resp)
}

// VerifyVoiceAudio implements [ServerAdapter]. It uploads the raw recording
// as a multipart form to POST /api/verify-voice for server-side extraction
// and matching.
func (h *httpServerAdapter) VerifyVoiceAudio(ctx context.Context, audio []byte, filename string) (models.MatchResponse, error) {
	token := h.Token()
	if token == "" {
		return models.MatchResponse{}, ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetFileReader("audio", filename, bytes.NewReader(audio)).
		Post("/api/verify-voice")
	if err != nil {
		return models.MatchResponse{}, fmt.Errorf("verify voice audio request: %w", err)
	}

	return decodeMatchResponse(resp)
}

// decodeMatchResponse interprets a verification response. A mismatch comes
// back as 401 with a match report body; it is distinguished from a real
// authorization failure by the presence of a score field.
func decodeMatchResponse(resp *resty.Response) (models.MatchResponse, error) {
	var result models.MatchResponse

	switch {
	case resp.IsSuccess():
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return models.MatchResponse{}, fmt.Errorf("decode match response: %w", err)
		}
		return result, nil
	case resp.StatusCode() == http.StatusUnauthorized:
		if err := json.Unmarshal(resp.Body(), &result); err == nil &&
			(result.Distance != nil || result.Similarity != nil) {
			return result, nil
		}
		fallthrough
	default:
		return models.MatchResponse{}, mapHTTPError(resp.StatusCode(), resp.Body())
	}
}

// GetFaceTemplate implements [ServerAdapter]. It GETs /api/get-face and
// returns the enrolled face template.
func (h *httpServerAdapter) GetFaceTemplate(ctx context.Context) (models.Descriptor, error) {
	return h.getTemplate(ctx, "/api/get-face")
}

// GetVoiceTemplate implements [ServerAdapter]. It GETs /api/get-voice and
// returns the enrolled voice template.
func (h *httpServerAdapter) GetVoiceTemplate(ctx context.Context) (models.Descriptor, error) {
	return h.getTemplate(ctx, "/api/get-voice")
}

func (h *httpServerAdapter) getTemplate(ctx context.Context, endpoint string) (models.Descriptor, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("get template request: %w", err)
	}
	if resp.IsError() {
		return nil, mapHTTPError(resp.StatusCode(), resp.Body())
	}

	var result models.DescriptorResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode template response: %w", err)
	}
	return result.Descriptor, nil
}

// AccessProtected implements [ServerAdapter]. It GETs /api/protected, which
// succeeds only after password, face, and voice have all been verified in
// the current session.
func (h *httpServerAdapter) AccessProtected(ctx context.Context) (models.AckResponse, error) {
	token := h.Token()
	if token == "" {
		return models.AckResponse{}, ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/protected")
	if err != nil {
		return models.AckResponse{}, fmt.Errorf("protected request: %w", err)
	}
	if resp.IsError() {
		return models.AckResponse{}, mapHTTPError(resp.StatusCode(), resp.Body())
	}

	var result models.AckResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.AckResponse{}, fmt.Errorf("decode protected response: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) storeTokenFromResponse(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		// Fall back to the JSON body when the header is absent.
		var tokenResp models.TokenResponse
		if jsonErr := json.Unmarshal(resp.Body(), &tokenResp); jsonErr != nil || tokenResp.Token == "" {
			return fmt.Errorf("parse bearer token: %w", err)
		}
		token = tokenResp.Token
	}

	h.SetToken(token)
	return nil
}
