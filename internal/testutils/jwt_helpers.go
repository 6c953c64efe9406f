package testutils

import (
	"context"
	"testing"

	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

// TestJWTSecret signs tokens in tests. Never use it outside tests.
const TestJWTSecret = "test-jwt-secret-that-is-32-chars-long"

// TestTokenLifetimeMinutes is the access token lifetime used in tests.
const TestTokenLifetimeMinutes = 15

// NewTestJWTService creates a real HS256 JWT service signed with TestJWTSecret.
func NewTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	return NewTestJWTServiceWithSecret(t, TestJWTSecret)
}

// NewTestJWTServiceWithSecret creates a real HS256 JWT service with secret.
func NewTestJWTServiceWithSecret(t *testing.T, secret string) auth.JWTService {
	t.Helper()

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: TestTokenLifetimeMinutes,
	})
	require.NoError(t, err)
	return svc
}

// MustGenerateToken issues an access token for user or fails the test.
func MustGenerateToken(t *testing.T, tokens auth.JWTService, user *domain.User) string {
	t.Helper()

	token, err := tokens.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return token
}
