// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from the default `.env` file in the current working
//     directory (once per process, missing file is fine).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the process cannot start without.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its
// fields with `env` tags:
//
//	type SessionConfig struct {
//	    Secret string `env:"TOTP_SECRET"`
//	    Issuer string `env:"OTPTICK_ISSUER" envDefault:"otptick"`
//	    Period int    `env:"OTPTICK_PERIOD" envDefault:"30"`
//	}
//
// Then populate the struct:
//
//	import "github.com/dmitrymomot/otptick/pkg/config"
//
//	func main() {
//	    var cfg SessionConfig
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// Every call reads the environment as it is at that moment; nothing is
// cached between calls.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
