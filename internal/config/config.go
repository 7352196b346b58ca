package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	Env             string
	TrustProxy      bool
	SentryDSN       string
	ShutdownTimeout time.Duration
	DocsEnabled     bool
	// Serverless is set by cmd/lambda, never from the environment.
	Serverless      bool
}

func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		Env:             "development",
		TrustProxy:      false,
		ShutdownTimeout: 5 * time.Second,
		DocsEnabled:     true,
	}
}

// Load reads an optional .env file (ENV_FILE overrides the path) and then
// overlays environment variables on top of Default. Variables already present
// in the environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Default()

	if listen := os.Getenv("LISTEN_ADDR"); listen != "" {
		cfg.ListenAddr = listen
	}

	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Env = env
	}

	if os.Getenv("TRUST_PROXY") == "true" {
		cfg.TrustProxy = true
	}

	cfg.SentryDSN = os.Getenv("SENTRY_DSN")

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", raw, err)
		}
		cfg.ShutdownTimeout = d
	}

	if os.Getenv("DOCS_ENABLED") == "false" {
		cfg.DocsEnabled = false
	}

	return &cfg, nil
}
