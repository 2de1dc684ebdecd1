package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/ports"
)

// TaskService manages tasks.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create adds a task. New tasks default to TO_DO and start not completed.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	status := domain.TaskToDo
	if input.Status != "" {
		parsed, err := domain.ParseTaskStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		ProjectID:   input.ProjectID,
		EmployeeID:  input.EmployeeID,
		Status:      status,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("project_id", created.ProjectID).Msg("task created")
	return created, nil
}

func (s *TaskService) GetAll(ctx context.Context) ([]domain.Task, error) {
	return s.repo.FindAll(ctx)
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) GetByEmployee(ctx context.Context, employeeID string) ([]domain.Task, error) {
	return s.repo.FindByEmployeeID(ctx, employeeID)
}

// Update applies a partial update; nil fields are left untouched. Setting
// status to DONE also flips the completed flag.
func (s *TaskService) Update(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.DueDate != nil {
		existing.DueDate = *input.DueDate
	}
	if input.Status != nil {
		parsed, err := domain.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		existing.Status = parsed
		if parsed == domain.TaskDone {
			existing.Completed = true
		}
	}
	if input.Completed != nil {
		existing.Completed = *input.Completed
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", updated.ID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}
