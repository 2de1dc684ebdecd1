package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
	// byEmployee backs FindByEmployeeID without a task collection.
	byEmployee map[string][]string
	nextID     int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{
		projects:   make(map[string]*domain.Project),
		byEmployee: make(map[string][]string),
	}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.nextID++
	stored := *p
	stored.ID = "proj-" + strconv.Itoa(r.nextID)
	r.projects[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		out := *p
		return &out, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) FindByEmployeeID(_ context.Context, employeeID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, id := range r.byEmployee[employeeID] {
		if p, ok := r.projects[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if _, ok := r.projects[p.ID]; !ok {
		return nil, domain.ErrProjectNotFound
	}
	stored := *p
	r.projects[p.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func TestProjectService_Create_DefaultStatus(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:      "Platform Rewrite",
		StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != domain.ProjectPlanned {
		t.Fatalf("expected default status planned, got %s", created.Status)
	}
}

func TestProjectService_Create_InvalidStatus(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{Name: "x", Status: "cancelled"}); !errors.Is(err, domain.ErrInvalidProjectStatus) {
		t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
	}
}

func TestProjectService_Update_Partial(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:        "Rollout",
		Description: "initial",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	status := string(domain.ProjectActive)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), ports.UpdateProjectInput{
		ID:      created.ID,
		Status:  &status,
		EndDate: &end,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != domain.ProjectActive {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if !updated.EndDate.Equal(end) {
		t.Fatalf("end date not updated: %v", updated.EndDate)
	}
	if updated.Name != "Rollout" || updated.Description != "initial" {
		t.Fatalf("unset fields must be untouched: %+v", updated)
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), ports.UpdateProjectInput{ID: "missing"}); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_GetByEmployee(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())

	mine, err := svc.Create(context.Background(), ports.CreateProjectInput{Name: "mine"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{Name: "other"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	repo.byEmployee["emp-1"] = []string{mine.ID}

	projects, err := svc.GetByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("GetByEmployee failed: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != mine.ID {
		t.Fatalf("expected only the assigned project, got %+v", projects)
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
