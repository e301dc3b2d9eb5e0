package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables using
// `env` field tags.
//
// If envFiles are given, each listed file must exist and load; a missing file
// is an error. Without arguments, the default .env in the working directory is
// loaded once per process if present, and silently skipped otherwise.
//
// Example:
//
//	type GameConfig struct {
//		Min int64 `env:"GUESS_MIN" envDefault:"1"`
//		Max int64 `env:"GUESS_MAX" envDefault:"100"`
//	}
//
//	var cfg GameConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFiles, err)
		}
	} else {
		defaultEnvLoaded.Do(func() {
			// The default .env file might not exist and that's ok.
			_ = godotenv.Load()
		})
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations required for the application to start.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
