package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/core/domain"
)

// RequireRole enforces role-based access control. A request without a
// principal is rejected as unauthenticated (401); an authenticated principal
// whose role is outside the allowed set is forbidden (403).
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}
			if !principal.HasAnyRole(allowedRoles...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
