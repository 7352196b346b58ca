// Package serverless exposes an http.Handler as an AWS Lambda function behind
// API Gateway, mirroring how the ping endpoint is deployed as a platform
// function rather than a long-running server.
package serverless

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// Function proxies API Gateway events into an http.Handler.
type Function struct {
	adapter *httpadapter.HandlerAdapter
}

func New(h http.Handler) *Function {
	return &Function{adapter: httpadapter.New(h)}
}

// Handle is the Lambda entry point.
func (f *Function) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return f.adapter.ProxyWithContext(ctx, req)
}
