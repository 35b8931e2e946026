package extractor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T, serverURL string) VoiceExtractor {
	t.Helper()
	return NewHTTPVoiceExtractor(config.Extractor{
		VoiceBaseURL: serverURL,
		Timeout:      5 * time.Second,
	}, logger.Nop())
}

func TestExtractVoiceDescriptor_Success(t *testing.T) {
	want := models.Descriptor{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/extract-voice-descriptor", r.URL.Path)

		file, header, err := r.FormFile("audio")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "greeting.wav", header.Filename)
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("RIFF-fake-wav"), body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(descriptorPayload{Descriptor: want})
	}))
	defer srv.Close()

	e := newTestExtractor(t, srv.URL)
	got, err := e.ExtractVoiceDescriptor(context.Background(), []byte("RIFF-fake-wav"), "greeting.wav")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExtractVoiceDescriptor_EmptyAudio(t *testing.T) {
	e := newTestExtractor(t, "http://localhost:0")

	_, err := e.ExtractVoiceDescriptor(context.Background(), nil, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractVoiceDescriptor_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("no speech detected"))
	}))
	defer srv.Close()

	e := newTestExtractor(t, srv.URL)
	_, err := e.ExtractVoiceDescriptor(context.Background(), []byte("RIFF"), "a.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.Contains(t, err.Error(), "no speech detected")
}

func TestExtractVoiceDescriptor_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	e := newTestExtractor(t, srv.URL)
	_, err := e.ExtractVoiceDescriptor(context.Background(), []byte("RIFF"), "a.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractVoiceDescriptor_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	e := newTestExtractor(t, srv.URL)
	_, err := e.ExtractVoiceDescriptor(context.Background(), []byte("RIFF"), "a.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractVoiceDescriptor_EmptyDescriptorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"descriptor":[]}`))
	}))
	defer srv.Close()

	e := newTestExtractor(t, srv.URL)
	_, err := e.ExtractVoiceDescriptor(context.Background(), []byte("RIFF"), "a.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}
