package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/service/auth"
)

// Authenticator resolves a bearer token to the user it was issued to.
// auth.JWTStrategy is the production implementation.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*domain.User, error)
}

// AuthMiddleware handles JWT authentication for protected routes.
type AuthMiddleware struct {
	authenticator Authenticator
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Authenticate is a middleware that validates the bearer token and stores the
// resolved user in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		user, err := m.authenticator.Authenticate(ctx, strings.TrimSpace(parts[1]))
		if err != nil {
			if !auth.IsUnauthorized(err) {
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"An unexpected error occurred", err)
				return
			}

			var message string
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, auth.ErrUserNotFound):
				message = "User not found"
			default:
				message = "Invalid token"
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, message, err)
			return
		}

		log := logger.FromContext(ctx).With(slog.String("username", user.Username))
		ctx = logger.WithLogger(shared.WithUser(ctx, user), log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser returns the authenticated user stored by Authenticate.
func GetUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}
