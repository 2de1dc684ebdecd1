package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/ports"
)

// ProjectService manages projects.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// Create adds a project. An empty status defaults to planned.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	status := domain.ProjectPlanned
	if input.Status != "" {
		parsed, err := domain.ParseProjectStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("name", created.Name).Msg("project created")
	return created, nil
}

func (s *ProjectService) GetAll(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmployee returns the distinct projects carrying tasks assigned to the
// given employee.
func (s *ProjectService) GetByEmployee(ctx context.Context, employeeID string) ([]domain.Project, error) {
	return s.repo.FindByEmployeeID(ctx, employeeID)
}

// Update applies a partial update; nil fields are left untouched.
func (s *ProjectService) Update(ctx context.Context, input ports.UpdateProjectInput) (*domain.Project, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.StartDate != nil {
		existing.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		existing.EndDate = *input.EndDate
	}
	if input.Status != nil {
		parsed, err := domain.ParseProjectStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		existing.Status = parsed
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", updated.ID).Msg("project updated")
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}
