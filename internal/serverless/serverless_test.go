package serverless

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/projecthelena/ping/internal/api"
	"github.com/projecthelena/ping/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentType(resp events.APIGatewayProxyResponse) string {
	if ct := resp.Headers["Content-Type"]; ct != "" {
		return ct
	}
	if values := resp.MultiValueHeaders["Content-Type"]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func newFunction() *Function {
	cfg := config.Default()
	return New(api.NewRouter(&cfg))
}

func TestHandle_Ping(t *testing.T) {
	fn := newFunction()

	for _, method := range []string{http.MethodGet, http.MethodPost, "PROPFIND", "PURGE"} {
		t.Run(method, func(t *testing.T) {
			resp, err := fn.Handle(context.Background(), events.APIGatewayProxyRequest{
				HTTPMethod: method,
				Path:       "/api/ping",
				Body:       `{"ignored":true}`,
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", contentType(resp))

			var body api.PingResponse
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.True(t, body.OK)
			assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, body.At)
		})
	}
}

func TestHandle_NotFound(t *testing.T) {
	resp, err := newFunction().Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/missing",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Body, "not found")
}
