package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/ports"
)

// EmployeeService manages the employee roster.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	tasks  ports.TaskRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, tasks ports.TaskRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, tasks: tasks, logger: logger}
}

// Create adds an employee directly (PM-only path). Unlike registration it
// accepts an explicit role, but applies the same defaults and password
// hashing rules.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if input.Username == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.RoleEmployee
	if input.Role != "" {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	classification := domain.ClassificationJuniorDeveloper
	if input.Classification != "" {
		parsed, err := domain.ParseClassification(input.Classification)
		if err != nil {
			return nil, err
		}
		classification = parsed
	}

	var passwordHash string
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Employee{
		Name:           input.Name,
		Username:       input.Username,
		PasswordHash:   passwordHash,
		Role:           role,
		Classification: classification,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("username", created.Username).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update; nil fields are left untouched. Role and
// password cannot be changed through this path.
func (s *EmployeeService) Update(ctx context.Context, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Username != nil {
		existing.Username = *input.Username
	}
	if input.Classification != nil {
		parsed, err := domain.ParseClassification(*input.Classification)
		if err != nil {
			return nil, err
		}
		existing.Classification = parsed
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", updated.ID).Msg("employee updated")
	return updated, nil
}

// Delete removes an employee and cascades deletion of their tasks. Employees
// holding the PM role are protected and cannot be deleted by anyone.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role == domain.RolePM {
		return domain.ErrProtectedRole
	}

	if err := s.tasks.DeleteByEmployeeID(ctx, id); err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}
