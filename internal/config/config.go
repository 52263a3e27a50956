// Package config defines the process-level configuration for the fishcast
// service. Configuration is loaded once at startup and is immutable
// thereafter, following 12-Factor principles: values come from the OS
// environment, optionally seeded from a .env file in local development.
//
// A missing required value or invalid format fails the load immediately
// (fail fast) rather than surfacing later as a half-configured server.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the top-level configuration struct. It is populated once during
// process initialization and never modified. Sub-components receive only the
// specific subsets they require.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"fishcast"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server  ServerConfig
	Scoring ScoringConfig

	// Build metadata, injected via ldflags rather than the environment.
	Build BuildInfo
}

// ServerConfig holds HTTP listener tuning.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"20s"`
	MaxBodyBytes    int64         `envconfig:"SERVER_MAX_BODY_BYTES" default:"1048576" validate:"gt=0"`
}

// ScoringConfig holds evaluation tuning for the scoring surface.
type ScoringConfig struct {
	// MaxParallel bounds concurrent per-species evaluations in a batch
	// request. Zero means one goroutine per species.
	MaxParallel int `envconfig:"SCORING_MAX_PARALLEL" default:"0" validate:"gte=0"`
}

// BuildInfo carries linker-injected build metadata.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Linker-injected build variables. Defaults apply to non-release builds.
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// Load resolves configuration from the environment. A .env file in the
// working directory is applied first when present; its absence is not an
// error. Time handling is pinned to UTC before anything else reads the clock.
func Load() (*Config, error) {
	time.Local = time.UTC

	// Non-fatal: production environments configure via real env vars.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}

	cfg.Build = BuildInfo{
		Version: buildVersion,
		Commit:  buildCommit,
		Date:    buildDate,
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
