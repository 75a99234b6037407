package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MIGASTO_API_URL", "")
	t.Setenv("MIGASTO_API_TOKEN", "")
	t.Setenv("MIGASTO_TOKEN_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadRejectsRelativeURL(t *testing.T) {
	t.Setenv("MIGASTO_API_URL", "localhost:4000/api")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for URL without scheme")
	}
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("MIGASTO_API_URL", "http://localhost:4000/api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:4000/api" {
		t.Errorf("base url = %q", cfg.APIBaseURL)
	}
}

func TestTokenSource(t *testing.T) {
	t.Run("from env", func(t *testing.T) {
		cfg := &Config{APIToken: "envtoken"}
		if got := cfg.TokenSource()(); got != "envtoken" {
			t.Errorf("token = %q", got)
		}
	})

	t.Run("file takes precedence and is re-read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte("filetoken\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg := &Config{APIToken: "envtoken", TokenFile: path}
		source := cfg.TokenSource()
		if got := source(); got != "filetoken" {
			t.Errorf("token = %q", got)
		}

		if err := os.WriteFile(path, []byte("rotated"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := source(); got != "rotated" {
			t.Errorf("token after rotation = %q", got)
		}
	})

	t.Run("missing file falls back to env", func(t *testing.T) {
		cfg := &Config{APIToken: "envtoken", TokenFile: "/nonexistent/token"}
		if got := cfg.TokenSource()(); got != "envtoken" {
			t.Errorf("token = %q", got)
		}
	})

	t.Run("no token at all", func(t *testing.T) {
		cfg := &Config{}
		if got := cfg.TokenSource()(); got != "" {
			t.Errorf("token = %q, want empty", got)
		}
	})
}
