package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create hashes the user's plaintext password and saves the user.
	// Returns ErrUsernameExists if the username is already taken and
	// ErrInvalidEntity (wrapping the domain error) if the user is invalid.
	// On success user.HashedPassword is set and user.Password is cleared.
	Create(ctx context.Context, user *domain.User) error

	// FindByUsername returns the user with the given username, or (nil, nil)
	// when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
