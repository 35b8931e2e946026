package config

import (
	"flag"
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds configuration for the CLI client.
type ClientConfig struct {
	// Adapter holds settings for the server HTTP adapter.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// ClientAdapter holds connection settings for the authentication server.
type ClientAdapter struct {
	// BaseURL is the base URL of the authentication server
	// (e.g. "http://localhost:3001"). Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single client request round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the CLI client configuration from environment
// variables and command-line flags, falling back to defaults for anything
// left unset.
//
// Flags:
//
//	-server server base URL
//	-timeout request timeout (e.g., "15s")
func GetClientConfig() (*ClientConfig, error) {
	var serverURL string
	var timeout time.Duration

	flag.StringVar(&serverURL, "server", "", "Server base URL")
	flag.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 15s)")
	flag.Parse()

	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	flagCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        serverURL,
			RequestTimeout: timeout,
		},
	}
	defaults := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        "http://localhost:3001",
			RequestTimeout: 15 * time.Second,
		},
	}

	for _, layer := range []*ClientConfig{flagCfg, defaults} {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, err
		}
	}

	return cfg, cfg.validate()
}
