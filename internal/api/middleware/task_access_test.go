package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

type stubAuthorizer struct {
	task *domain.Task
	err  error

	gotPrincipal domain.Principal
	gotTaskID    string
}

func (s *stubAuthorizer) AuthorizeTaskAccess(_ context.Context, principal domain.Principal, taskID string) (*domain.Task, error) {
	s.gotPrincipal = principal
	s.gotTaskID = taskID
	return s.task, s.err
}

func newTaskContext(t *testing.T, principal *domain.Principal) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if principal != nil {
		c.Set(principalKey, *principal)
	}
	return c
}

func TestRequireTaskAccess_Allowed(t *testing.T) {
	task := &domain.Task{ID: "t1", Title: "release"}
	authz := &stubAuthorizer{task: task}
	principal := domain.Principal{Email: "exec@example.com", Role: domain.RoleUser}
	c := newTaskContext(t, &principal)

	var called bool
	if err := RequireTaskAccess(authz, "id")(okHandler(&called))(c); err != nil {
		t.Fatalf("access denied: %v", err)
	}
	if !called {
		t.Fatal("handler not called")
	}
	if authz.gotTaskID != "t1" || authz.gotPrincipal != principal {
		t.Fatalf("authorizer called with taskID=%q principal=%+v", authz.gotTaskID, authz.gotPrincipal)
	}

	stored, ok := TaskFromContext(c)
	if !ok || stored.ID != "t1" {
		t.Fatalf("resolved task not stored, got %+v ok=%v", stored, ok)
	}
}

func TestRequireTaskAccess_NoIdentity(t *testing.T) {
	authz := &stubAuthorizer{task: &domain.Task{ID: "t1"}}
	c := newTaskContext(t, nil)

	var called bool
	err := RequireTaskAccess(authz, "id")(okHandler(&called))(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous error = %v, want 401", err)
	}
	if authz.gotTaskID != "" {
		t.Fatal("authorizer consulted before authentication")
	}
}

func TestRequireTaskAccess_ErrorsPassThrough(t *testing.T) {
	principal := domain.Principal{Email: "user@example.com", Role: domain.RoleUser}

	for _, want := range []error{domain.ErrAccessDenied, domain.ErrTaskNotFound} {
		authz := &stubAuthorizer{err: want}
		c := newTaskContext(t, &principal)

		var called bool
		err := RequireTaskAccess(authz, "id")(okHandler(&called))(c)
		if !errors.Is(err, want) {
			t.Fatalf("error = %v, want %v", err, want)
		}
		if called {
			t.Fatal("handler ran despite authorization failure")
		}
	}
}
