package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/auth"
	"github.com/teamforge/workforce-system/internal/core/domain"
)

type fakeEmployeeLookup struct {
	employees map[string]*domain.Employee
}

func (f *fakeEmployeeLookup) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	f.employees[e.Username] = e
	return e, nil
}

func (f *fakeEmployeeLookup) FindAll(context.Context) ([]domain.Employee, error) { return nil, nil }

func (f *fakeEmployeeLookup) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (f *fakeEmployeeLookup) FindByUsername(_ context.Context, username string) (*domain.Employee, error) {
	if e, ok := f.employees[username]; ok {
		return e, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (f *fakeEmployeeLookup) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeLookup) Delete(context.Context, string) error { return nil }

func authSetup(t *testing.T) (*auth.TokenProvider, *fakeEmployeeLookup) {
	t.Helper()
	provider := auth.NewTokenProvider("test-secret", time.Hour)
	lookup := &fakeEmployeeLookup{employees: map[string]*domain.Employee{
		"maria": {ID: "emp-7", Username: "maria", Role: domain.RolePM},
	}}
	return provider, lookup
}

// runAuth sends a request through Authenticate and reports whether the chain
// reached the handler and which principal, if any, was attached.
func runAuth(t *testing.T, provider *auth.TokenProvider, lookup *fakeEmployeeLookup, authorization string) (reached bool, principal domain.Principal, hasPrincipal bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/getAllEmployees", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(provider, lookup)(func(c echo.Context) error {
		reached = true
		principal, hasPrincipal = PrincipalFrom(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return reached, principal, hasPrincipal
}

func TestAuthenticate_ValidToken(t *testing.T) {
	provider, lookup := authSetup(t)
	token, err := provider.Issue("maria", domain.RolePM, "emp-7")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	reached, principal, ok := runAuth(t, provider, lookup, "Bearer "+token)
	if !reached {
		t.Fatalf("handler not reached")
	}
	if !ok {
		t.Fatalf("expected principal in context")
	}
	if principal.Username != "maria" || principal.Role != domain.RolePM || principal.EmployeeID != "emp-7" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthenticate_NoHeader(t *testing.T) {
	provider, lookup := authSetup(t)

	reached, _, ok := runAuth(t, provider, lookup, "")
	if !reached {
		t.Fatalf("handler must be reached without a token")
	}
	if ok {
		t.Fatalf("no principal expected without a token")
	}
}

func TestAuthenticate_PrefixIsCaseSensitive(t *testing.T) {
	provider, lookup := authSetup(t)
	token, err := provider.Issue("maria", domain.RolePM, "emp-7")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	for _, header := range []string{
		"bearer " + token,
		"BEARER " + token,
		"Bearer" + token,
		"Token " + token,
	} {
		reached, _, ok := runAuth(t, provider, lookup, header)
		if !reached {
			t.Fatalf("header %q: handler must still be reached", header)
		}
		if ok {
			t.Fatalf("header %q: must be treated as no token supplied", header)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	provider, lookup := authSetup(t)

	for _, token := range []string{
		"not-a-token",
		"a.b.c",
	} {
		reached, _, ok := runAuth(t, provider, lookup, "Bearer "+token)
		if !reached {
			t.Fatalf("token %q: chain must never halt", token)
		}
		if ok {
			t.Fatalf("token %q: no principal expected", token)
		}
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	provider, lookup := authSetup(t)
	forged, err := auth.NewTokenProvider("other-secret", time.Hour).Issue("maria", domain.RolePM, "emp-7")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	reached, _, ok := runAuth(t, provider, lookup, "Bearer "+forged)
	if !reached {
		t.Fatalf("chain must never halt")
	}
	if ok {
		t.Fatalf("forged token must not authenticate")
	}
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	provider, lookup := authSetup(t)
	token, err := provider.Issue("ghost", domain.RoleEmployee, "emp-0")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	reached, _, ok := runAuth(t, provider, lookup, "Bearer "+token)
	if !reached {
		t.Fatalf("chain must never halt on a failed subject lookup")
	}
	if ok {
		t.Fatalf("unknown subject must stay unauthenticated")
	}
}
