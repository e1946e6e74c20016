// Package config reads merchant credentials and service locations from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default service locations.
const (
	DefaultBaseURL    = "https://service.centrapay.com"
	DefaultPayBaseURL = "http://app.centrapay.com/pay"
)

// Environment variable names.
const (
	EnvMerchantID     = "MERCHANT_ID"
	EnvClientID       = "CLIENT_ID"
	EnvMerchantAPIKey = "MERCHANT_API_KEY"
	EnvBaseURL        = "CENTRAPAY_BASE_URL"
	EnvPayBaseURL     = "CENTRAPAY_PAY_BASE_URL"
)

// defaultEnvFile is loaded when present; its absence is not an error.
const defaultEnvFile = ".env"

// Config holds the credentials and service URLs read from the environment.
type Config struct {
	MerchantID     string
	ClientID       string
	MerchantAPIKey string
	BaseURL        string
	PayBaseURL     string
}

// Load reads the configuration. When envFile is empty the default .env file is
// tried and silently skipped if missing; an explicit envFile must exist.
// Variables already present in the environment are never overwritten.
//
// Credentials are not validated: an unset MERCHANT_API_KEY yields an empty key.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", defaultEnvFile, err)
	}

	return &Config{
		MerchantID:     os.Getenv(EnvMerchantID),
		ClientID:       os.Getenv(EnvClientID),
		MerchantAPIKey: os.Getenv(EnvMerchantAPIKey),
		BaseURL:        trimURL(getEnv(EnvBaseURL, DefaultBaseURL)),
		PayBaseURL:     trimURL(getEnv(EnvPayBaseURL, DefaultPayBaseURL)),
	}, nil
}

// Override replaces the base URLs with non-empty flag values.
func (c *Config) Override(baseURL, payBaseURL string) {
	if baseURL != "" {
		c.BaseURL = trimURL(baseURL)
	}
	if payBaseURL != "" {
		c.PayBaseURL = trimURL(payBaseURL)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func trimURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}
