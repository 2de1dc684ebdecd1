package ports

import (
	"context"

	"github.com/teamforge/workforce-system/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role and
// Classification are optional; empty values take the documented defaults.
type RegisterInput struct {
	Name           string
	Username       string
	Password       string
	Role           string
	Classification string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Employee, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenIssuer mints signed bearer tokens. Kept small so tests can fake it.
type TokenIssuer interface {
	Issue(username string, role domain.Role, employeeID string) (string, error)
}

// LoginLimiter throttles repeated failed login attempts per username.
type LoginLimiter interface {
	// Allow returns domain.ErrTooManyAttempts when the username is locked out.
	Allow(ctx context.Context, username string) error
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
