package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration read from DATADECK_* variables
type Config struct {
	Port         int           `env:"DATADECK_PORT" envDefault:"8080"`
	DBPath       string        `env:"DATADECK_DB_PATH" envDefault:"datadeck.db"`
	JWTSecret    string        `env:"DATADECK_JWT_SECRET"`
	TokenTTL     time.Duration `env:"DATADECK_TOKEN_TTL" envDefault:"24h"`
	RateLimit    float64       `env:"DATADECK_RATE_LIMIT" envDefault:"100"`
	RateBurst    int           `env:"DATADECK_RATE_BURST" envDefault:"20"`
	LogLevel     string        `env:"DATADECK_LOG_LEVEL" envDefault:"info"`
	LogDev       bool          `env:"DATADECK_LOG_DEV" envDefault:"false"`
	Seed         uint64        `env:"DATADECK_SEED" envDefault:"0"`
	HandSize     int           `env:"DATADECK_HAND_SIZE" envDefault:"5"`
	DeckSize     int           `env:"DATADECK_DECK_SIZE" envDefault:"3"`
	MaxBodyBytes int64         `env:"DATADECK_MAX_BODY_BYTES" envDefault:"1048576"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. The JWT secret is checked by RequireSecret.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("DATADECK_PORT out of range: %d", c.Port)
	}
	if c.RateLimit <= 0 || c.RateBurst < 1 {
		return errors.New("DATADECK_RATE_LIMIT and DATADECK_RATE_BURST must be positive")
	}
	// The opening hand is drawn from a deck of DeckSize cards per category
	if c.DeckSize < 1 || c.HandSize < 0 || c.HandSize > 3*c.DeckSize {
		return fmt.Errorf("hand size %d does not fit a deck of %d per category", c.HandSize, c.DeckSize)
	}
	if c.MaxBodyBytes < 1 {
		return errors.New("DATADECK_MAX_BODY_BYTES must be positive")
	}
	if c.TokenTTL <= 0 {
		return errors.New("DATADECK_TOKEN_TTL must be positive")
	}
	return nil
}

// RequireSecret returns the signing secret or an error when unset
func (c Config) RequireSecret() ([]byte, error) {
	if len(c.JWTSecret) < 16 {
		return nil, errors.New("DATADECK_JWT_SECRET must be at least 16 characters")
	}
	return []byte(c.JWTSecret), nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
