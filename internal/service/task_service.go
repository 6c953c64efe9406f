package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/events"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/redact"
	"github.com/phrazzld/taskr-api/internal/store"
)

// CreateTaskInput carries the caller-supplied fields of a new task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// TaskService provides owner-scoped task operations.
type TaskService interface {
	// GetTasks returns the user's tasks matching filter. The result is never nil.
	GetTasks(ctx context.Context, user *domain.User, filter domain.TaskFilter) ([]*domain.Task, error)

	// GetTaskByID returns one of the user's tasks. A task owned by someone
	// else is reported as store.ErrTaskNotFound.
	GetTaskByID(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.Task, error)

	// CreateTask creates an OPEN task owned by user and returns the stored record.
	CreateTask(ctx context.Context, user *domain.User, input CreateTaskInput) (*domain.Task, error)

	// FindPending returns every OPEN task across all users, oldest first.
	FindPending(ctx context.Context) ([]*domain.Task, error)
}

type taskServiceImpl struct {
	tasks   store.TaskStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
// It returns an error if tasks is nil. A nil emitter discards events.
func NewTaskService(
	tasks store.TaskStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if tasks == nil {
		return nil, errors.New("tasks cannot be nil")
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:   tasks,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "task_service")),
	}, nil
}

// GetTasks implements TaskService.GetTasks.
func (s *taskServiceImpl) GetTasks(
	ctx context.Context,
	user *domain.User,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, user, filter)
	if err != nil {
		return nil, NewTaskServiceError("get_tasks", "failed to list tasks", err)
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// GetTaskByID implements TaskService.GetTaskByID.
func (s *taskServiceImpl) GetTaskByID(
	ctx context.Context,
	user *domain.User,
	id uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == nil {
		return nil, ErrUnauthenticated
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to get task", err)
	}

	if !task.IsOwnedBy(user.ID) {
		log.Warn("task requested by non-owner",
			slog.String("task_id", id.String()),
			slog.String("user_id", user.ID.String()))
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	user *domain.User,
	input CreateTaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == nil {
		return nil, ErrUnauthenticated
	}

	task, err := domain.NewTask(user.ID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", user.ID.String()))

	s.emitTaskCreated(ctx, task)
	return task, nil
}

// emitTaskCreated publishes task.created. The task is already stored, so a
// failure is only logged.
func (s *taskServiceImpl) emitTaskCreated(ctx context.Context, task *domain.Task) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewEvent(events.TypeTaskCreated, events.TaskCreatedPayload{
		TaskID: task.ID,
		UserID: task.UserID,
		Status: string(task.Status),
	})
	if err == nil {
		err = s.emitter.EmitEvent(ctx, event)
	}
	if err != nil {
		log.Warn("failed to emit task.created event",
			redact.ErrorAttr(err),
			slog.String("task_id", task.ID.String()))
	}
}

// FindPending implements TaskService.FindPending.
func (s *taskServiceImpl) FindPending(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindByStatus(ctx, domain.TaskStatusOpen)
	if err != nil {
		return nil, NewTaskServiceError("find_pending", "failed to find pending tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}
