package handlers_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/tenant-auth-service/pkg/token"
)

func issueToken(t *testing.T, ttl time.Duration, name string) string {
	t.Helper()
	signed, err := token.NewService(testSecret, ttl).Issue("t1", "a@x.com", name)
	require.NoError(t, err)
	return signed
}

func TestValidateToken_FromHeader(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())
	signed := issueToken(t, token.DefaultTTL, "A")

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"Authorization": "Bearer " + signed},
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["valid"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "t1", user["tenant_id"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "A", user["name"])

	expiresAt, ok := body["expires_at"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(expiresAt), time.Now().Unix())
}

func TestValidateToken_FromLowercaseHeader(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())
	signed := issueToken(t, token.DefaultTTL, "A")

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"authorization": "Bearer " + signed},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestValidateToken_FromBody(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())
	signed := issueToken(t, token.DefaultTTL, "A")

	raw, err := json.Marshal(map[string]string{"token": signed})
	require.NoError(t, err)

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Body:       string(raw),
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestValidateToken_HeaderWinsOverBody(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())
	headerToken := issueToken(t, token.DefaultTTL, "FromHeader")
	bodyToken := issueToken(t, token.DefaultTTL, "FromBody")

	raw, err := json.Marshal(map[string]string{"token": bodyToken})
	require.NoError(t, err)

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"Authorization": "Bearer " + headerToken},
		Body:       string(raw),
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	user := decodeBody(t, resp)["user"].(map[string]any)
	assert.Equal(t, "FromHeader", user["name"])
}

func TestValidateToken_Missing(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "POST"})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "token required", decodeBody(t, resp)["error"])
}

func TestValidateToken_NonBearerHeaderIgnored(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
	})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())
	// issued in the past, outside the validity window
	signed := issueToken(t, -time.Minute, "A")

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"Authorization": "Bearer " + signed},
	})
	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "token expired", body["error"])
}

func TestValidateToken_CorruptSignature(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())
	signed, err := token.NewService([]byte("some-other-secret"), token.DefaultTTL).Issue("t1", "a@x.com", "A")
	require.NoError(t, err)

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"Authorization": "Bearer " + signed},
	})
	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["valid"])
	// wrong signature is "invalid", never "expired"
	assert.Equal(t, "token invalid", body["error"])
}

func TestValidateToken_CorrelationIDEchoed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(newMemStore())

	resp, err := h.ValidateToken(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"X-Correlation-Id": "corr-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "corr-123", resp.Headers["X-Correlation-Id"])
}
