// Package config loads server configuration from the environment. Command
// line flags in cmd take precedence over these values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server's runtime configuration.
type Config struct {
	Port        string `env:"SITESTORE_PORT" envDefault:"8080"`
	DataFile    string `env:"SITESTORE_DATA_FILE" envDefault:"sitestore.db"`
	TokenSecret string `env:"SITESTORE_TOKEN_SECRET" envDefault:"lil-hale-dev-secret"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
