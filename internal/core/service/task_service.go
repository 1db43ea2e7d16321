package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

// TaskService implements task use-cases. Every operation is scoped to
// the authenticated user; the repository layer enforces the ownership
// filter so a foreign task is indistinguishable from a missing one.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func (s *TaskService) CreateTask(ctx context.Context, userID, title string) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("user_id", userID).Msg("task created")
	return created, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID, title string) (*domain.Task, error) {
	updated, err := s.repo.Update(ctx, taskID, userID, title)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := s.repo.Delete(ctx, taskID, userID); err != nil {
		return err
	}

	s.log.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task deleted")
	return nil
}
