// Package config loads driver settings from the environment.
package config

import (
	"fmt"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the settings of the contacttrace driver.
type Config struct {
	// LogLevel is one of debug, info, warn, error, in any case.
	LogLevel string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`

	// IDLength is the length of generated anonymous identifiers.
	IDLength int `env:"ANON_ID_LENGTH,default=20" validate:"min=1,max=256"`

	// IDSeed makes identifier generation reproducible. Zero means unseeded.
	IDSeed int64 `env:"ID_SEED,default=0"`

	// UniqueIDs enables collision checking between generated identifiers.
	UniqueIDs bool `env:"UNIQUE_IDS,default=true"`

	// ScenarioPath points at a YAML scenario. Empty runs the built-in walkthrough.
	ScenarioPath string `env:"SCENARIO_PATH"`

	// MetricsDump prints the collected metrics after the run.
	MetricsDump bool `env:"METRICS_DUMP,default=false"`

	// NoColor disables coloured verdicts in the report when non-empty.
	NoColor string `env:"NO_COLOR"`
}

// ColorDisabled follows the NO_COLOR convention: any non-empty value counts.
func (c *Config) ColorDisabled() bool {
	return c.NoColor != ""
}

var validate = validator.New()

// Load reads an optional .env file, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalises the log level and checks value ranges.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
