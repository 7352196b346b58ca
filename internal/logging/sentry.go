package logging

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry configures error reporting. An empty DSN leaves the client
// disabled; the returned flush func is always safe to call.
func InitSentry(dsn, environment string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return func() {}, fmt.Errorf("sentry init: %w", err)
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}
