package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Point at a file that does not exist so a stray .env never leaks in.
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"LISTEN_ADDR", "APP_ENV", "TRUST_PROXY", "SENTRY_DSN", "SHUTDOWN_TIMEOUT", "DOCS_ENABLED"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ListenAddr != ":8080" {
			t.Errorf("Expected default ListenAddr :8080, got %s", cfg.ListenAddr)
		}
		if cfg.Env != "development" {
			t.Errorf("Expected default Env development, got %s", cfg.Env)
		}
		if cfg.TrustProxy {
			t.Error("Expected TrustProxy to default to false")
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("Expected default ShutdownTimeout 5s, got %s", cfg.ShutdownTimeout)
		}
		if !cfg.DocsEnabled {
			t.Error("Expected DocsEnabled to default to true")
		}
	})

	t.Run("Env Overrides", func(t *testing.T) {
		t.Setenv("LISTEN_ADDR", ":9000")
		t.Setenv("APP_ENV", "production")
		t.Setenv("TRUST_PROXY", "true")
		t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")
		t.Setenv("SHUTDOWN_TIMEOUT", "12s")
		t.Setenv("DOCS_ENABLED", "false")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ListenAddr != ":9000" {
			t.Errorf("Expected ListenAddr :9000, got %s", cfg.ListenAddr)
		}
		if cfg.Env != "production" {
			t.Errorf("Expected Env production, got %s", cfg.Env)
		}
		if !cfg.TrustProxy {
			t.Error("Expected TrustProxy true")
		}
		if cfg.SentryDSN != "https://key@sentry.example.com/1" {
			t.Errorf("Unexpected SentryDSN %q", cfg.SentryDSN)
		}
		if cfg.ShutdownTimeout != 12*time.Second {
			t.Errorf("Expected ShutdownTimeout 12s, got %s", cfg.ShutdownTimeout)
		}
		if cfg.DocsEnabled {
			t.Error("Expected DocsEnabled false")
		}
	})

	t.Run("Invalid Shutdown Timeout", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		if _, err := Load(); err == nil {
			t.Fatal("Expected error for invalid SHUTDOWN_TIMEOUT")
		}
	})
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("LISTEN_ADDR=:7070\nAPP_ENV=staging\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	// godotenv never overrides variables that are already set.
	t.Setenv("APP_ENV", "production")
	// Registers cleanup for the variable the file is about to set.
	t.Setenv("LISTEN_ADDR", "")
	_ = os.Unsetenv("LISTEN_ADDR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ListenAddr != ":7070" {
		t.Errorf("Expected ListenAddr from file :7070, got %s", cfg.ListenAddr)
	}
	if cfg.Env != "production" {
		t.Errorf("Expected environment to win over file, got %s", cfg.Env)
	}
}
