package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL points at the hosted MiGasto backend.
const DefaultAPIBaseURL = "https://apimisgastos.onrender.com/api"

type Config struct {
	APIBaseURL string
	APIToken   string
	TokenFile  string
	LogLevel   string
}

// Load reads configuration from a .env file (if present) and the
// environment. The token may come from MIGASTO_API_TOKEN directly or
// from a file named by MIGASTO_TOKEN_FILE, re-read on every request so
// a re-login does not require restarting the dashboard.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: getenv("MIGASTO_API_URL", DefaultAPIBaseURL),
		APIToken:   os.Getenv("MIGASTO_API_TOKEN"),
		TokenFile:  os.Getenv("MIGASTO_TOKEN_FILE"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
	}

	if !strings.Contains(cfg.APIBaseURL, "://") {
		return nil, errors.New("MIGASTO_API_URL must be an absolute URL")
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return cfg, nil
}

// TokenSource returns a function the store client calls before each
// request. Absence of a token means requests go out unauthenticated.
func (c *Config) TokenSource() func() string {
	return func() string {
		if c.TokenFile != "" {
			data, err := os.ReadFile(c.TokenFile)
			if err == nil {
				if tok := strings.TrimSpace(string(data)); tok != "" {
					return tok
				}
			}
		}
		return c.APIToken
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
