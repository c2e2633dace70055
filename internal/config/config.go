package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrMissingAPIKey aborts the run before any network call is made.
var ErrMissingAPIKey = errors.New("FRED_API_KEY is not set: export FRED_API_KEY=<your key> (request one at https://fred.stlouisfed.org/docs/api/api_key.html)")

// Config holds all configuration for the application.
type Config struct {
	AppEnv      string
	FREDAPIKey  string
	FREDBaseURL string
	HTTPTimeout time.Duration
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	timeoutStr := getEnv("FRED_TIMEOUT_SECONDS", "30")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30
	}

	return &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		FREDAPIKey:  os.Getenv("FRED_API_KEY"),
		FREDBaseURL: getEnv("FRED_BASE_URL", "https://api.stlouisfed.org"),
		HTTPTimeout: time.Duration(timeout) * time.Second,
	}
}

// Validate checks the parts of the configuration without a usable default.
func (c *Config) Validate() error {
	if c.FREDAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
