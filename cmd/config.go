package cmd

import (
	"fmt"

	"github.com/dmitrymomot/otptick/pkg/config"
)

// SessionConfig carries the environment-driven settings shared by the
// session commands. A .env file in the working directory is honored.
type SessionConfig struct {
	Secret string `env:"TOTP_SECRET"`
	Issuer string `env:"OTPTICK_ISSUER" envDefault:"otptick"`
	Period int    `env:"OTPTICK_PERIOD" envDefault:"30"`
}

// loadSessionConfig reads the environment and validates the values a user
// could plausibly break.
func loadSessionConfig() (SessionConfig, error) {
	var cfg SessionConfig
	if err := config.Load(&cfg); err != nil {
		return SessionConfig{}, err
	}
	if cfg.Period <= 0 {
		return SessionConfig{}, fmt.Errorf("OTPTICK_PERIOD must be positive, got %d", cfg.Period)
	}
	return cfg, nil
}
