package validator

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/validatekit/pkg/logger"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse validator configuration")

// Config holds engine settings that hosts may keep in the environment.
//
//	VALIDATOR_MISSING_FIELD=validate
//	VALIDATOR_MAX_DEPTH=20
//	VALIDATOR_LOG_LEVEL=error
//	VALIDATOR_LOG_FORMAT=text
type Config struct {
	MissingField MissingFieldPolicy `env:"MISSING_FIELD" envDefault:"skip"`
	MaxDepth     int                `env:"MAX_DEPTH" envDefault:"0"`
	LogLevel     string             `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat    string             `env:"LOG_FORMAT" envDefault:"json"`
}

// DefaultConfig returns the settings New uses without options.
func DefaultConfig() Config {
	return Config{
		MissingField: MissingFieldSkip,
		MaxDepth:     DefaultMaxDepth,
		LogLevel:     "warn",
		LogFormat:    string(logger.FormatJSON),
	}
}

// LoadConfig reads Config from VALIDATOR_* environment variables. Files,
// when given, are loaded with godotenv first; variables already set in the
// environment win.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "VALIDATOR_"}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	switch cfg.MissingField {
	case MissingFieldSkip, MissingFieldValidate:
	default:
		return Config{}, fmt.Errorf("%w: unknown missing field policy %q", ErrParsingConfig, cfg.MissingField)
	}
	return cfg, nil
}

// WithConfig applies cfg: missing field policy, depth bound and a
// diagnostics logger built with pkg/logger writing to stderr.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		WithMissingFieldPolicy(cfg.MissingField)(v)
		WithMaxDepth(cfg.MaxDepth)(v)

		opts := []logger.Option{
			logger.WithComponent("validator"),
			logger.WithLevelString(cfg.LogLevel),
		}
		if cfg.LogFormat == string(logger.FormatText) {
			opts = append(opts, logger.WithTextFormatter())
		}
		v.logger = logger.New(opts...)
	}
}
