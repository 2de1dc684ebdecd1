package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/core/domain"
)

func runRequireRole(t *testing.T, principal *domain.Principal, allowed ...domain.Role) (int, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/getAllTasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, *principal)
	}

	reached := false
	handler := RequireRole(allowed...)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec.Code, reached
}

func TestRequireRole_Unauthenticated(t *testing.T) {
	code, reached := runRequireRole(t, nil, domain.RolePM)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if reached {
		t.Fatalf("handler must not run without a principal")
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	principal := &domain.Principal{EmployeeID: "emp-1", Username: "nina", Role: domain.RoleEmployee}
	code, reached := runRequireRole(t, principal, domain.RolePM)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if reached {
		t.Fatalf("handler must not run for a disallowed role")
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	principal := &domain.Principal{EmployeeID: "emp-2", Username: "omar", Role: domain.RolePM}
	code, reached := runRequireRole(t, principal, domain.RolePM)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !reached {
		t.Fatalf("handler must run for an allowed role")
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	principal := &domain.Principal{EmployeeID: "emp-3", Username: "pia", Role: domain.RoleEmployee}
	code, reached := runRequireRole(t, principal, domain.RolePM, domain.RoleEmployee)
	if code != http.StatusOK || !reached {
		t.Fatalf("expected handler to run, got code %d reached %v", code, reached)
	}
}
