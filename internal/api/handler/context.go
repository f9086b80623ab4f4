package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-management-api/internal/api/middleware"
	"github.com/taskboard/task-management-api/internal/core/domain"
)

// ctxPrincipal extracts the identity established by the Authenticate
// middleware. Routes calling this sit behind RequireAuth or stricter, so
// an absent principal means the middleware chain is miswired; reject
// with 401 rather than proceeding with an empty identity.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
