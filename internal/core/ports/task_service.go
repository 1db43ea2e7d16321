package ports

import (
	"context"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
)

// TaskService defines use-case operations for tasks. The userID argument
// is always the identity resolved by the authorization middleware, never
// client-supplied input.
type TaskService interface {
	CreateTask(ctx context.Context, userID, title string) (*domain.Task, error)
	ListTasks(ctx context.Context, userID string) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID, title string) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}
