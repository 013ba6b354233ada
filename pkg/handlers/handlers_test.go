package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/raywall/tenant-auth-service/pkg/handlers"
	"github.com/raywall/tenant-auth-service/pkg/observability"
	"github.com/raywall/tenant-auth-service/pkg/token"
	"github.com/raywall/tenant-auth-service/pkg/users"
)

var testSecret = []byte("test-signing-secret")

// memStore is an in-memory UserStore with injectable failures.
type memStore struct {
	items     map[string]users.User
	createErr error
	getErr    error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]users.User)}
}

func storeKey(tenantID, email string) string {
	return tenantID + "/" + email
}

func (s *memStore) Create(ctx context.Context, user *users.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	k := storeKey(user.TenantID, user.Email)
	if _, exists := s.items[k]; exists {
		return users.ErrAlreadyExists
	}
	s.items[k] = *user
	return nil
}

func (s *memStore) GetByKey(ctx context.Context, tenantID, email string) (*users.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	item, exists := s.items[storeKey(tenantID, email)]
	if !exists {
		return nil, users.ErrNotFound
	}
	return &item, nil
}

func newTestHandler(store handlers.UserStore) *handlers.Handler {
	return handlers.New(
		store,
		token.NewService(testSecret, token.DefaultTTL),
		&observability.NoopProvider{},
		zerolog.Nop(),
	)
}

func jsonRequest(t *testing.T, body any) events.APIGatewayProxyRequest {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Body:       string(raw),
	}
}

func decodeBody(t *testing.T, resp events.APIGatewayProxyResponse) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	return out
}

func requestWithBody(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Body:       body,
	}
}

var errStoreDown = errors.New("store unavailable")
