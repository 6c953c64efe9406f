package auth

import (
	"context"
	"time"

	"github.com/phrazzld/taskr-api/internal/domain"
)

// TokenTypeAccess is the only token type this service issues.
const TokenTypeAccess = "access"

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token whose payload carries the
	// user's username.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the signature, expiry and token type of tokenString
	// and extracts its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified payload of an access token.
type Claims struct {
	// Username identifies the principal; it is resolved to a user on every request.
	Username string `json:"username"`

	// TokenType is always "access".
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
