package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/task-management-api/internal/api/handler"
	"github.com/taskboard/task-management-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, problem) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var p problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode problem envelope: %v (body %q)", err, rec.Body.String())
	}
	return rec.Code, p
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"access denied", domain.ErrAccessDenied, http.StatusForbidden},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", fmt.Errorf("user u1: %w", domain.ErrUserNotFound), http.StatusNotFound},
		{"comment not found", domain.ErrCommentNotFound, http.StatusNotFound},
		{"duplicate task", &domain.TitleInUseError{Title: "release"}, http.StatusConflict},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
		{"invalid status", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, "archived"), http.StatusBadRequest},
		{"invalid comment", fmt.Errorf("%w: must be between 1 and 1000 characters", domain.ErrInvalidComment), http.StatusBadRequest},
		{"missing credentials", domain.ErrMissingCredentials, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, p := handleError(t, tc.err)
			if code != tc.want {
				t.Fatalf("status = %d, want %d", code, tc.want)
			}
			if p.Status != tc.want {
				t.Fatalf("envelope status = %d, want %d", p.Status, tc.want)
			}
			if p.Title == "" || p.Detail == "" {
				t.Fatalf("incomplete envelope: %+v", p)
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	_, p := handleError(t, errors.New("pq: connection reset"))
	if p.Detail != "internal server error" {
		t.Fatalf("internal detail leaked: %q", p.Detail)
	}
}

func TestErrorHandler_EmailConflictCarriesEmail(t *testing.T) {
	code, p := handleError(t, &domain.EmailInUseError{Email: "dup@example.com"})
	if code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", code)
	}
	if p.Email != "dup@example.com" {
		t.Fatalf("envelope email = %q", p.Email)
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	ve := handler.ValidationErrors{
		"email":    "must be a valid email address",
		"password": "must be at least 6 characters",
	}
	code, p := handleError(t, ve)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if len(p.Errors) != 2 || p.Errors["email"] == "" || p.Errors["password"] == "" {
		t.Fatalf("field map = %+v", p.Errors)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, p := handleError(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
	if code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", code)
	}
	if p.Detail != "too many requests" {
		t.Fatalf("detail = %q", p.Detail)
	}
}
