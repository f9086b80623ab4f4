package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/task-management-api/internal/api/handler"
	"github.com/taskboard/task-management-api/internal/api/metrics"
	"github.com/taskboard/task-management-api/internal/core/domain"
)

// problem is the canonical error envelope for all API errors. Extra
// fields carry context for specific failures: the conflicting email on a
// duplicate registration, the field→message map on validation failures.
type problem struct {
	Status int               `json:"status"`
	Title  string            `json:"title"`
	Detail string            `json:"detail"`
	Email  string            `json:"email,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent problem envelope: {"status", "title", "detail", ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		p := resolveError(err, log, c)
		_ = c.JSON(p.Status, p)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) problem {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return problem{Status: he.Code, Title: http.StatusText(he.Code), Detail: fmt.Sprintf("%v", he.Message)}
	}

	// Aggregated request validation failures → 400 with the full field map.
	var ve handler.ValidationErrors
	if errors.As(err, &ve) {
		return problem{
			Status: http.StatusBadRequest,
			Title:  "Validation Failed",
			Detail: "one or more fields are invalid",
			Errors: ve,
		}
	}

	// Duplicate registration carries the conflicting email.
	var emailErr *domain.EmailInUseError
	if errors.As(err, &emailErr) {
		return problem{Status: http.StatusConflict, Title: "Conflict", Detail: emailErr.Error(), Email: emailErr.Email}
	}

	// Known domain errors → deterministic HTTP codes. Wrapped messages
	// carry the offending identifier where the caller needs it.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return problem{Status: http.StatusUnauthorized, Title: "Authentication Failed", Detail: "invalid credentials"}
	case errors.Is(err, domain.ErrAccessDenied):
		metrics.AuthzDenialsTotal.WithLabelValues(c.Request().Method + " " + c.Path()).Inc()
		return problem{Status: http.StatusForbidden, Title: "Access Denied", Detail: err.Error()}
	case errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		return problem{Status: http.StatusNotFound, Title: "Not Found", Detail: err.Error()}
	case errors.Is(err, domain.ErrTaskExists), errors.Is(err, domain.ErrUserExists):
		return problem{Status: http.StatusConflict, Title: "Conflict", Detail: err.Error()}
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidComment),
		errors.Is(err, domain.ErrMissingCredentials):
		return problem{Status: http.StatusBadRequest, Title: "Validation Failed", Detail: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return problem{Status: http.StatusInternalServerError, Title: "Server Error", Detail: "internal server error"}
}
