package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/api/middleware"
	"github.com/teamforge/workforce-system/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Authenticate middleware
// and performs a fast-fail check before any service call: the RequireRole
// middleware should already have rejected unauthenticated requests, so a
// missing principal here means a wiring error, not a client mistake.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication principal")
	}
	return principal, nil
}
