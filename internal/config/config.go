// Package config loads the driver configuration from environment variables.
//
// All settings are optional; unset variables fall back to their defaults:
//
//	STREAMAPI_LOG_LEVEL=info     debug, info, warn or error
//	STREAMAPI_LOG_FORMAT=text    text or json
//	STREAMAPI_RESOURCE=file.txt  name of the embedded resource to filter
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ErrInvalidConfig is returned by Load when a setting has an unsupported value.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration structure.
type Config struct {
	Log Log

	// Resource is the name of the embedded text resource read by the line filter task.
	Resource string `env:"STREAMAPI_RESOURCE" env-default:"file.txt" validate:"required"`
}

// Log holds logger settings.
type Log struct {
	Level  string `env:"STREAMAPI_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Format string `env:"STREAMAPI_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}
