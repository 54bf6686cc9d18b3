package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load loads environment variables into the provided configuration struct.
//
// The function first attempts to load the default .env file if it hasn't
// been loaded yet, then parses environment variables into the struct based
// on field tags. If parsing fails, an appropriate error is returned and the
// struct is left untouched beyond what the parser already wrote.
//
// Example:
//
//	type SessionConfig struct {
//		Secret string `env:"TOTP_SECRET"`
//		Issuer string `env:"OTPTICK_ISSUER" envDefault:"otptick"`
//		Period int    `env:"OTPTICK_PERIOD" envDefault:"30"`
//	}
//
//	var cfg SessionConfig
//	err := config.Load(&cfg)
//	if err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the process to
// start at all.
//
// Example:
//
//	var cfg SessionConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
