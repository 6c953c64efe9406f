package testutils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// UserOption customizes a user built by MustCreateUserForTest.
type UserOption func(*domain.User)

// WithUsername sets the username.
func WithUsername(username string) UserOption {
	return func(u *domain.User) { u.Username = username }
}

// WithHashedPassword sets the stored hash.
func WithHashedPassword(hash string) UserOption {
	return func(u *domain.User) { u.HashedPassword = hash }
}

// MustCreateUserForTest builds a user as the store would return it: it has
// an ID and a hash but no plaintext password.
func MustCreateUserForTest(t *testing.T, opts ...UserOption) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:             uuid.New(),
		Username:       "user-" + uuid.NewString()[:8],
		HashedPassword: "$2a$10$placeholderplaceholderplaceholderplaceholderplaceho",
		CreatedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(user)
	}

	require.NoError(t, user.Validate(), "test user must be valid")
	return user
}

// TaskOption customizes a task built by MustCreateTaskForTest.
type TaskOption func(*domain.Task)

// WithTaskUserID sets the owner.
func WithTaskUserID(userID uuid.UUID) TaskOption {
	return func(task *domain.Task) { task.UserID = userID }
}

// WithTaskTitle sets the title.
func WithTaskTitle(title string) TaskOption {
	return func(task *domain.Task) { task.Title = title }
}

// WithTaskDescription sets the description.
func WithTaskDescription(description string) TaskOption {
	return func(task *domain.Task) { task.Description = description }
}

// WithTaskStatus sets the status, bypassing the OPEN-only constructor.
func WithTaskStatus(status domain.TaskStatus) TaskOption {
	return func(task *domain.Task) { task.Status = status }
}

// WithTaskCreatedAt sets both timestamps.
func WithTaskCreatedAt(at time.Time) TaskOption {
	return func(task *domain.Task) {
		task.CreatedAt = at
		task.UpdatedAt = at
	}
}

// MustCreateTaskForTest builds a valid task owned by a random user unless
// WithTaskUserID is given.
func MustCreateTaskForTest(t *testing.T, opts ...TaskOption) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(uuid.New(), "Test task", "")
	require.NoError(t, err)

	for _, opt := range opts {
		opt(task)
	}

	require.NoError(t, task.Validate(), "test task must be valid")
	return task
}
