package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/raywall/tenant-auth-service/pkg/users"
)

type registerRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
}

type registerResponse struct {
	Message string     `json:"message"`
	User    users.User `json:"user"`
}

// Register creates a credential record for a new (tenant_id, email) pair.
func (h *Handler) Register(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.instrument(ctx, "register", req, h.register)
}

func (h *Handler) register(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := zerolog.Ctx(ctx)

	var in registerRequest
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return respond(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if field, ok := h.missingField(in); ok {
		return respond(http.StatusBadRequest, errorResponse{Error: "missing required field: " + field})
	}

	user := users.User{
		TenantID:       in.TenantID,
		Email:          in.Email,
		Name:           in.Name,
		PasswordDigest: users.HashPassword(in.Password),
		Phone:          in.Phone,
		CreatedAt:      h.now().UTC().Format(time.RFC3339),
		Active:         true,
	}

	// unicidade garantida pelo write condicional do store
	err := h.users.Create(ctx, &user)
	if errors.Is(err, users.ErrAlreadyExists) {
		return respond(http.StatusBadRequest, errorResponse{Error: "user already exists"})
	}
	if err != nil {
		logger.Error().Err(err).Str("tenant_id", in.TenantID).Msg("create user failed")
		return respond(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return respond(http.StatusCreated, registerResponse{
		Message: "user created",
		User:    user,
	})
}
