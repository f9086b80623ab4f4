package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// taskKey is the echo context key under which RequireTaskAccess stores
// the resolved task so handlers do not look it up a second time.
const taskKey = "task"

// RequireTaskAccess enforces the ownership policy (admin, or the task's
// assigned executor) for routes addressing a single task. The task id is
// read from the named path parameter. A nonexistent task surfaces as
// not-found, not as a denial.
func RequireTaskAccess(authz ports.TaskAuthorizer, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := Principal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			task, err := authz.AuthorizeTaskAccess(c.Request().Context(), principal, c.Param(param))
			if err != nil {
				return err
			}

			c.Set(taskKey, task)
			return next(c)
		}
	}
}

// TaskFromContext returns the task resolved by RequireTaskAccess, if
// any.
func TaskFromContext(c echo.Context) (*domain.Task, bool) {
	t, ok := c.Get(taskKey).(*domain.Task)
	return t, ok
}
