package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/teamforge/workforce-system/internal/auth"
	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/service"
)

type memEmployeeRepo struct {
	byUsername map[string]*domain.Employee
	nextID     int
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{byUsername: make(map[string]*domain.Employee)}
}

func (r *memEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, exists := r.byUsername[e.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	stored := *e
	stored.ID = "emp-" + strconv.Itoa(r.nextID)
	r.byUsername[stored.Username] = &stored
	out := stored
	return &out, nil
}

func (r *memEmployeeRepo) FindAll(context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0, len(r.byUsername))
	for _, e := range r.byUsername {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	for _, e := range r.byUsername {
		if e.ID == id {
			out := *e
			return &out, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) FindByUsername(_ context.Context, username string) (*domain.Employee, error) {
	if e, ok := r.byUsername[username]; ok {
		out := *e
		return &out, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	return e, nil
}

func (r *memEmployeeRepo) Delete(context.Context, string) error { return nil }

type passLimiter struct{}

func (passLimiter) Allow(context.Context, string) error         { return nil }
func (passLimiter) RecordFailure(context.Context, string) error { return nil }
func (passLimiter) Reset(context.Context, string) error         { return nil }

func newAuthTestServer() *echo.Echo {
	tokens := auth.NewTokenProvider("test-secret", time.Hour)
	svc := service.NewAuthService(newMemEmployeeRepo(), tokens, passLimiter{}, zerolog.Nop())
	h := NewAuthHandler(svc)

	e := echo.New()
	e.Validator = NewValidator()
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	return e
}

func doRegister(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doLogin(e *echo.Echo, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_RegisterThenLogin(t *testing.T) {
	e := newAuthTestServer()

	rec := doRegister(e, `{"name":"Quinn Ray","username":"quinn","password":"hunter2"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "Employee registered successfully" {
		t.Fatalf("unexpected register body: %q", rec.Body.String())
	}

	rec = doLogin(e, "quinn", "hunter2")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := auth.NewTokenProvider("test-secret", time.Hour).Parse(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "quinn" || claims.Role != string(domain.RoleEmployee) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthHandler_LoginRejectionsAreUniform(t *testing.T) {
	e := newAuthTestServer()

	if rec := doRegister(e, `{"username":"rita","password":"right"}`); rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", rec.Code)
	}

	wrongPass := doLogin(e, "rita", "wrong")
	unknownUser := doLogin(e, "nobody", "wrong")

	for name, rec := range map[string]*httptest.ResponseRecorder{"wrong password": wrongPass, "unknown user": unknownUser} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Fatalf("failure bodies must be identical: %q vs %q", wrongPass.Body.String(), unknownUser.Body.String())
	}

	var resp messageResponse
	if err := json.Unmarshal(wrongPass.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failure body: %v", err)
	}
	if resp.Message != "Invalid credentials" {
		t.Fatalf("unexpected failure message: %q", resp.Message)
	}
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	e := newAuthTestServer()

	if rec := doRegister(e, `{"username":"sam","password":"pw1"}`); rec.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", rec.Code)
	}

	rec := doRegister(e, `{"username":"sam","password":"pw2"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if rec.Body.String() != "Username already exists" {
		t.Fatalf("unexpected conflict body: %q", rec.Body.String())
	}

	// The original password must still work after the failed overwrite.
	if rec := doLogin(e, "sam", "pw1"); rec.Code != http.StatusOK {
		t.Fatalf("original credentials broken: %d", rec.Code)
	}
	if rec := doLogin(e, "sam", "pw2"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("duplicate's password must not work: %d", rec.Code)
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	e := newAuthTestServer()

	cases := map[string]string{
		"missing password": `{"username":"tess"}`,
		"missing username": `{"password":"pw"}`,
		"bad role":         `{"username":"tess","password":"pw","role":"ROOT"}`,
		"bad class":        `{"username":"tess","password":"pw","classification":"INTERN"}`,
	}
	for name, body := range cases {
		if rec := doRegister(e, body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d (%s)", name, rec.Code, rec.Body.String())
		}
	}
}

func TestAuthHandler_LoginViaQueryParams(t *testing.T) {
	e := newAuthTestServer()

	if rec := doRegister(e, `{"username":"uma","password":"pw"}`); rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login?username=uma&password=pw", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for query-param login, got %d (%s)", rec.Code, rec.Body.String())
	}
}
