package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/api/metrics"
	"github.com/teamforge/workforce-system/internal/auth"
	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/ports"
)

// Context keys set by Authenticate.
const (
	principalKey = "principal"
	usernameKey  = "username"
	roleKey      = "role"
)

// TokenVerifier parses bearer tokens. Kept small so tests can fake it.
type TokenVerifier interface {
	Parse(token string) (*auth.Claims, error)
}

// Authenticate extracts a bearer token from the Authorization header,
// validates it and, on success, resolves the subject into a Principal
// attached to the request context. It never halts the chain: a missing or
// invalid token, or a subject that no longer exists, simply leaves the
// request unauthenticated for downstream role checks to reject.
//
// The "Bearer " prefix must match exactly, case included; anything else
// counts as no token supplied.
func Authenticate(tokens TokenVerifier, employees ports.EmployeeRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return next(c)
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return next(c)
			}

			employee, err := employees.FindByUsername(c.Request().Context(), claims.Subject)
			if err != nil {
				// Subject no longer resolves; proceed unauthenticated rather
				// than blocking the chain on a lookup failure.
				return next(c)
			}

			principal := domain.Principal{
				EmployeeID: employee.ID,
				Username:   employee.Username,
				Role:       employee.Role,
			}
			c.Set(principalKey, principal)
			c.Set(usernameKey, principal.Username)
			c.Set(roleKey, string(principal.Role))

			return next(c)
		}
	}
}

// PrincipalFrom returns the principal attached by Authenticate, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrSignatureMismatch):
		return "signature"
	default:
		return "malformed"
	}
}
