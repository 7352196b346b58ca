package api

import (
	"encoding/json"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/projecthelena/ping/internal/config"
	_ "github.com/projecthelena/ping/internal/docs"
	"github.com/projecthelena/ping/internal/logging"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SecurityHeaders middleware adds essential security headers to all responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

const pingPath = "/api/ping"

// pingAnyMethod serves pingPath for every method, including ones chi does
// not know about, and passes everything else through to the mux.
func pingAnyMethod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == pingPath {
			Ping(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sentryOptions repanics so Recoverer still answers 500 after reporting. A
// serverless host can freeze right after the response, so delivery is
// synchronous there.
func sentryOptions(cfg *config.Config) sentryhttp.Options {
	return sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: cfg.Serverless,
		Timeout:         2 * time.Second,
	}
}

// NewRouter builds the HTTP router for the ping service. The same handler is
// served by cmd/server and wrapped by the Lambda function in cmd/lambda.
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logging.New("http"),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// Only trust X-Forwarded-For when running behind a known reverse proxy.
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}

	r.Use(SecurityHeaders)

	r.Use(sentryhttp.New(sentryOptions(cfg)).Handle)

	// Dispatched ahead of chi's method table so unknown verbs still reach Ping.
	r.Use(pingAnyMethod)

	r.Get("/healthz", Healthz)

	if cfg.DocsEnabled {
		r.Get("/api/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/api/docs/doc.json"),
		))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
