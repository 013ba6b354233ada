package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/raywall/tenant-auth-service/pkg/users"
)

type loginRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginUser is the sanitized user object returned alongside the token.
type loginUser struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

// Login verifies credentials and issues a session token.
func (h *Handler) Login(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.instrument(ctx, "login", req, h.login)
}

func (h *Handler) login(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := zerolog.Ctx(ctx)

	var in loginRequest
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return respond(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if field, ok := h.missingField(in); ok {
		return respond(http.StatusBadRequest, errorResponse{Error: "missing required field: " + field})
	}

	user, err := h.users.GetByKey(ctx, in.TenantID, in.Email)
	if errors.Is(err, users.ErrNotFound) {
		// mesma mensagem do password errado: não revela qual metade falhou
		return respond(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	}
	if err != nil {
		logger.Error().Err(err).Str("tenant_id", in.TenantID).Msg("lookup user failed")
		return respond(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	if user.PasswordDigest != users.HashPassword(in.Password) {
		return respond(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	}

	if !user.Active {
		return respond(http.StatusUnauthorized, errorResponse{Error: "inactive user"})
	}

	signed, err := h.tokens.Issue(user.TenantID, user.Email, user.Name)
	if err != nil {
		logger.Error().Err(err).Msg("token issuance failed")
		return respond(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return respond(http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   signed,
		User: loginUser{
			TenantID: user.TenantID,
			Email:    user.Email,
			Name:     user.Name,
			Phone:    user.Phone,
		},
	})
}
