package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Without function overrides it keeps tasks in memory and applies filters the
// same way the PostgreSQL store does.
type MockTaskStore struct {
	CreateFn       func(ctx context.Context, task *domain.Task) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByStatusFn func(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)
	ListFn         func(ctx context.Context, user *domain.User, filter domain.TaskFilter) ([]*domain.Task, error)

	mu    sync.Mutex
	Tasks []*domain.Task

	// ListCalls records every filter passed to List.
	ListCalls []domain.TaskFilter
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates an empty in-memory task store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{}
}

// Create implements store.TaskStore.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *task
	m.Tasks = append(m.Tasks, &stored)
	return nil
}

// GetByID implements store.TaskStore.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, task := range m.Tasks {
		if task.ID == id {
			found := *task
			return &found, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// FindByStatus implements store.TaskStore.
func (m *MockTaskStore) FindByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	if m.FindByStatusFn != nil {
		return m.FindByStatusFn(ctx, status)
	}

	return m.filter(func(task *domain.Task) bool {
		return task.Status == status
	}), nil
}

// List implements store.TaskStore.
func (m *MockTaskStore) List(
	ctx context.Context,
	user *domain.User,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	m.mu.Lock()
	m.ListCalls = append(m.ListCalls, filter)
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, user, filter)
	}

	search := strings.ToLower(filter.Search)
	return m.filter(func(task *domain.Task) bool {
		if task.UserID != user.ID {
			return false
		}
		if filter.Status != "" && task.Status != filter.Status {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(task.Title), search) &&
			!strings.Contains(strings.ToLower(task.Description), search) {
			return false
		}
		return true
	}), nil
}

func (m *MockTaskStore) filter(keep func(*domain.Task) bool) []*domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if keep(task) {
			found := *task
			result = append(result, &found)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
