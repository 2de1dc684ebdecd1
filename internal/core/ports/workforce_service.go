package ports

import (
	"context"
	"time"

	"github.com/teamforge/workforce-system/internal/core/domain"
)

// CreateEmployeeInput carries the fields accepted when a PM creates an
// employee directly (as opposed to self-registration).
type CreateEmployeeInput struct {
	Name           string
	Username       string
	Password       string
	Role           string
	Classification string
}

// UpdateEmployeeInput holds a partial employee update; nil fields are left
// untouched. Role and password are deliberately not updatable here.
type UpdateEmployeeInput struct {
	ID             string
	Name           *string
	Username       *string
	Classification *string
}

// EmployeeService manages the employee roster.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
}

// UpdateProjectInput holds a partial project update; nil fields are left untouched.
type UpdateProjectInput struct {
	ID          string
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *string
}

// ProjectService manages projects.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]domain.Project, error)
	Update(ctx context.Context, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	ProjectID   string
	EmployeeID  string
	Status      string
}

// UpdateTaskInput holds a partial task update; nil fields are left untouched.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *string
	Completed   *bool
}

// TaskService manages tasks.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetAll(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]domain.Task, error)
	Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
