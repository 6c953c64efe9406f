package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/store"
)

// JWTStrategy turns a bearer token into the user it was issued to.
type JWTStrategy struct {
	tokens JWTService
	users  store.UserStore
}

// NewJWTStrategy creates a JWTStrategy.
func NewJWTStrategy(tokens JWTService, users store.UserStore) *JWTStrategy {
	return &JWTStrategy{tokens: tokens, users: users}
}

// Validate resolves verified claims to a user record.
// Returns ErrUserNotFound when the username no longer exists.
func (s *JWTStrategy) Validate(ctx context.Context, claims *Claims) (*domain.User, error) {
	if claims == nil || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("principal lookup failed: %w", err)
	}
	if user == nil {
		logger.FromContext(ctx).Debug("token refers to unknown user",
			slog.String("username", claims.Username))
		return nil, ErrUserNotFound
	}

	return user, nil
}

// Authenticate validates tokenString and returns the user it identifies.
func (s *JWTStrategy) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	return s.Validate(ctx, claims)
}

// IsUnauthorized reports whether err should be answered with 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrTokenNotYetValid) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrWrongTokenType) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserNotFound)
}
