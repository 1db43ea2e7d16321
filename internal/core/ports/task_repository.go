package ports

import (
	"context"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every query is
// filtered by userID so one user can never observe or mutate another
// user's tasks; a non-matching owner behaves exactly like a missing task
// (domain.ErrTaskNotFound).
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, id, userID, title string) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
}
