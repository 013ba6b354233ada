// Package token issues and validates the session tokens returned by the
// login handler.
//
// Tokens are compact JWTs signed with HMAC-SHA256 and carry the identity
// claims of the credential record (tenant_id, email, name) plus the standard
// iat/exp pair. Validation is a pure function of the token string and the
// shared signing secret; no store lookup is involved.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the fixed validity window of a session token.
const DefaultTTL = time.Hour

var (
	// ErrExpired indicates a structurally valid token past its exp claim.
	ErrExpired = errors.New("token: expired")
	// ErrInvalid indicates a malformed token or a signature mismatch.
	ErrInvalid = errors.New("token: invalid")
)

// Claims carries the identity attributes embedded at issuance time.
type Claims struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a shared secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a token service. Pass DefaultTTL unless a test needs
// a different validity window.
func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token embedding the given identity, valid from now until
// now+ttl.
func (s *Service) Issue(tenantID, email, name string) (string, error) {
	now := s.now()
	claims := Claims{
		TenantID: tenantID,
		Email:    email,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the decoded claims.
// An expired token returns ErrExpired; any other verification failure
// (bad signature, malformed token, wrong algorithm) returns ErrInvalid.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
