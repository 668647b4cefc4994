package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultAddr         = ":8080"
	DefaultAppName      = "ShopDocs"
	DefaultLogFormat    = "text"
	DefaultLogLevel     = "info"
	DefaultAPIRateLimit = 20.0
	devSessionSecret    = "shopdocs-development-session-secret"
)

// Config holds all configuration for the application.
type Config struct {
	Addr          string  `validate:"required"`
	AppName       string  `validate:"required"`
	LogFormat     string  `validate:"oneof=text json"`
	LogLevel      string  `validate:"oneof=debug info warn error"`
	ContentDir    string  `validate:"omitempty,dir"`
	SessionSecret string  `validate:"min=16"`
	APIRateLimit  float64 `validate:"gt=0"`
}

// New loads configuration from an optional .env file and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          getenv("APP_ADDR", DefaultAddr),
		AppName:       getenv("APP_NAME", DefaultAppName),
		LogFormat:     getenv("LOG_FORMAT", DefaultLogFormat),
		LogLevel:      getenv("LOG_LEVEL", DefaultLogLevel),
		ContentDir:    os.Getenv("CONTENT_DIR"),
		SessionSecret: getenv("SESSION_SECRET", devSessionSecret),
		APIRateLimit:  DefaultAPIRateLimit,
	}

	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid API_RATE_LIMIT %q: %w", v, err)
		}
		cfg.APIRateLimit = limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
