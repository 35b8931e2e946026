package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"token_sign_key": "json-key",
			"token_issuer": "json-issuer",
			"token_duration": "2h",
			"bcrypt_cost": 12
		},
		"biometrics": {
			"face_distance_threshold": 0.5,
			"voice_similarity_threshold": 0.7,
			"face_descriptor_length": 128,
			"voice_descriptor_min_length": 16
		},
		"storage": {"db": {"dsn": "postgres://json"}},
		"server": {"http_address": "localhost:8081", "request_timeout": "20s"},
		"extractor": {"voice_base_url": "http://voice:5000", "timeout": "10s"},
		"workers": {"session_cleanup_interval": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 0.5, cfg.Biometrics.FaceDistanceThreshold)
	assert.Equal(t, 16, cfg.Biometrics.VoiceDescriptorMinLength)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://voice:5000", cfg.Extractor.VoiceBaseURL)
	assert.Equal(t, time.Minute, cfg.Workers.SessionCleanupInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSON(t, `{"auth": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"string form", `"90s"`, 90 * time.Second},
		{"numeric nanoseconds", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
