// Package handlers implements the three request handlers of the service:
// registration, login and token validation. Each one is a single-pass
// request/response transaction over an API Gateway proxy event; all failures
// are converted to the response envelope here and never escape to the
// Lambda runtime.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raywall/tenant-auth-service/pkg/observability"
	"github.com/raywall/tenant-auth-service/pkg/token"
	"github.com/raywall/tenant-auth-service/pkg/users"
)

// HeaderCorrelationID identifica a requisição nos logs e na resposta.
const HeaderCorrelationID = "X-Correlation-Id"

// UserStore is the slice of the users repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, user *users.User) error
	GetByKey(ctx context.Context, tenantID, email string) (*users.User, error)
}

// Handler holds the process-wide dependencies, built once at startup and
// shared read-only across invocations.
type Handler struct {
	users   UserStore
	tokens  *token.Service
	metrics observability.Provider
	log     zerolog.Logger
	valid   *validator.Validate
	now     func() time.Time
}

// New wires a handler. All dependencies are explicit; there are no package
// globals to swap in tests.
func New(store UserStore, tokens *token.Service, metrics observability.Provider, log zerolog.Logger) *Handler {
	v := validator.New()
	// erros de validação reportam o nome do campo JSON, não o da struct
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		users:   store,
		tokens:  tokens,
		metrics: metrics,
		log:     log,
		valid:   v,
		now:     time.Now,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// corsHeaders replicate the permissive envelope of the public API; every
// response carries them.
var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
	"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
}

// CORSHeaders returns a copy of the response envelope headers, for
// transports that answer preflight requests themselves.
func CORSHeaders() map[string]string {
	headers := make(map[string]string, len(corsHeaders))
	for k, v := range corsHeaders {
		headers[k] = v
	}
	return headers
}

// respond monta o envelope padrão. Nunca retorna um erro Go para o runtime.
func respond(status int, body any) (events.APIGatewayProxyResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		payload = []byte(`{"error":"internal server error"}`)
	}

	headers := make(map[string]string, len(corsHeaders)+1)
	for k, v := range corsHeaders {
		headers[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(payload),
	}, nil
}

// instrument envolve um handler com o logger contextual (correlation ID),
// a linha final de latência e o contador de métricas por resultado.
func (h *Handler) instrument(
	ctx context.Context,
	name string,
	req events.APIGatewayProxyRequest,
	fn func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error),
) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	corrID := req.Headers[HeaderCorrelationID]
	if corrID == "" {
		// API Gateway pode normalizar os headers para lowercase
		corrID = req.Headers["x-correlation-id"]
	}
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := h.log.With().
		Str("correlation_id", corrID).
		Str("handler", name).
		Logger()
	ctx = logger.WithContext(ctx)

	resp, err := fn(ctx, req)

	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("request completed")

	_ = h.metrics.Count("auth.request", 1, []string{
		"handler:" + name,
		fmt.Sprintf("status:%d", resp.StatusCode),
	})

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	resp.Headers[HeaderCorrelationID] = corrID

	return resp, err
}

// missingField valida a struct de request e devolve o primeiro campo
// obrigatório ausente (nome JSON), se houver.
func (h *Handler) missingField(in any) (string, bool) {
	err := h.valid.Struct(in)
	if err == nil {
		return "", false
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", false
	}
	return verrs[0].Field(), true
}
