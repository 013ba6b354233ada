package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/raywall/tenant-auth-service/pkg/token"
)

type validateRequest struct {
	Token string `json:"token"`
}

// claimsUser is the decoded identity returned on a valid token.
type claimsUser struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type validateResponse struct {
	Valid     bool       `json:"valid"`
	User      claimsUser `json:"user"`
	ExpiresAt int64      `json:"expires_at"`
}

type invalidTokenResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

// ValidateToken verifies a session token's signature and expiry and returns
// the decoded identity claims. Purely computational: no store access.
func (h *Handler) ValidateToken(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.instrument(ctx, "validate", req, h.validateToken)
}

func (h *Handler) validateToken(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	tokenString := extractToken(req)
	if tokenString == "" {
		return respond(http.StatusBadRequest, errorResponse{Error: "token required"})
	}

	claims, err := h.tokens.Validate(tokenString)
	if errors.Is(err, token.ErrExpired) {
		return respond(http.StatusUnauthorized, invalidTokenResponse{Valid: false, Error: "token expired"})
	}
	if err != nil {
		return respond(http.StatusUnauthorized, invalidTokenResponse{Valid: false, Error: "token invalid"})
	}

	return respond(http.StatusOK, validateResponse{
		Valid: true,
		User: claimsUser{
			TenantID: claims.TenantID,
			Email:    claims.Email,
			Name:     claims.Name,
		},
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}

// extractToken procura o token no header Authorization (Bearer) e, na
// ausência dele, no campo `token` do body. O header tem precedência.
func extractToken(req events.APIGatewayProxyRequest) string {
	for name, value := range req.Headers {
		if !strings.EqualFold(name, "Authorization") {
			continue
		}
		if after, ok := strings.CutPrefix(value, "Bearer "); ok && after != "" {
			return after
		}
	}

	if req.Body != "" {
		var in validateRequest
		// body malformado aqui não é erro: apenas não há token
		if err := json.Unmarshal([]byte(req.Body), &in); err == nil {
			return in.Token
		}
	}

	return ""
}
