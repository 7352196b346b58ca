package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/projecthelena/ping/internal/api"
	"github.com/projecthelena/ping/internal/config"
	"github.com/projecthelena/ping/internal/logging"
	"github.com/projecthelena/ping/internal/serverless"
)

var fn *serverless.Function

func init() {
	logger := logging.New("ping-lambda")
	logger.Printf("cold start")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	// The gateway routes /api/ping straight here, so the Swagger UI is not exposed.
	cfg.DocsEnabled = false
	// The function may be frozen as soon as it returns; report panics before that.
	cfg.Serverless = true

	if _, err := logging.InitSentry(cfg.SentryDSN, cfg.Env); err != nil {
		logger.Printf("sentry disabled: %v", err)
	}

	fn = serverless.New(api.NewRouter(cfg))
}

func main() {
	lambda.Start(fn.Handle)
}
