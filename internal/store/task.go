package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task. Returns ErrInvalidEntity if validation fails.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID returns the task with the given ID regardless of owner.
	// Returns ErrTaskNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// FindByStatus returns every task, across all users, with the given status,
	// oldest first.
	FindByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)

	// List returns the user's tasks matching filter, oldest first. The result
	// is never nil. Any storage failure is logged and reported as ErrInternal.
	List(ctx context.Context, user *domain.User, filter domain.TaskFilter) ([]*domain.Task, error)
}
