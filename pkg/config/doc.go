// Package config provides a type-safe, generic way to load configuration from
// environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`: values
// are read from optional .env files, then parsed into any Go struct using
// `env` field tags.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type GameConfig struct {
//	    Min         int64 `env:"GUESS_MIN" envDefault:"1"`
//	    Max         int64 `env:"GUESS_MAX" envDefault:"100"`
//	    MaxAttempts int   `env:"GUESS_MAX_ATTEMPTS" envDefault:"0"`
//	}
//
// Then populate it:
//
//	var cfg GameConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Explicit .env files can be listed and must then exist:
//
//	err := config.Load(&cfg, "./config/.env")
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrNilPointer - nil pointer passed to Load/MustLoad.
//   - ErrLoadingEnvFiles - an explicitly listed .env file failed to load.
//   - ErrParsingConfig - environment variables could not be parsed into the struct.
package config
