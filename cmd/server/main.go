package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/projecthelena/ping/internal/api"
	"github.com/projecthelena/ping/internal/config"
	"github.com/projecthelena/ping/internal/logging"
)

// @title        Ping API
// @version      1.0
// @description  Stateless liveness endpoint returning an availability flag and the server time.
// @BasePath     /
func main() {
	logger := logging.New("ping")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	flush, err := logging.InitSentry(cfg.SentryDSN, cfg.Env)
	if err != nil {
		logger.Printf("sentry disabled: %v", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		// Fatalf skips deferred calls.
		flush()
		logger.Fatalf("%v", err)
	}

	logger.Println("Server exiting")
}

// run serves until ctx is cancelled or the listener fails, then shuts down
// within cfg.ShutdownTimeout.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      api.NewRouter(cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Starting server on %s (env=%s)", cfg.ListenAddr, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
