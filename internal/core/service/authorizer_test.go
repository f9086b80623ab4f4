package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

func TestAuthorizer_AdminAlwaysAllowed(t *testing.T) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	admin := users.seed("admin@example.com", domain.RoleAdmin)
	task := tasks.seed("deploy", "author-1", "")

	authz := NewAuthorizer(tasks, users)
	got, err := authz.AuthorizeTaskAccess(context.Background(), principalFor(admin), task.ID)
	if err != nil {
		t.Fatalf("admin denied: %v", err)
	}
	if got.ID != task.ID {
		t.Fatalf("resolved task = %q, want %q", got.ID, task.ID)
	}
}

func TestAuthorizer_ExecutorAllowed(t *testing.T) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	executor := users.seed("exec@example.com", domain.RoleUser)
	task := tasks.seed("deploy", "author-1", executor.ID)

	authz := NewAuthorizer(tasks, users)
	if _, err := authz.AuthorizeTaskAccess(context.Background(), principalFor(executor), task.ID); err != nil {
		t.Fatalf("executor denied: %v", err)
	}
}

func TestAuthorizer_StrangerDenied(t *testing.T) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	executor := users.seed("exec@example.com", domain.RoleUser)
	stranger := users.seed("other@example.com", domain.RoleUser)
	task := tasks.seed("deploy", "author-1", executor.ID)

	authz := NewAuthorizer(tasks, users)
	_, err := authz.AuthorizeTaskAccess(context.Background(), principalFor(stranger), task.ID)
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("stranger error = %v, want ErrAccessDenied", err)
	}
}

func TestAuthorizer_UnassignedDeniedForNonAdmin(t *testing.T) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	user := users.seed("user@example.com", domain.RoleUser)
	task := tasks.seed("deploy", "author-1", "")

	authz := NewAuthorizer(tasks, users)
	_, err := authz.AuthorizeTaskAccess(context.Background(), principalFor(user), task.ID)
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("unassigned task error = %v, want ErrAccessDenied", err)
	}
}

func TestAuthorizer_MissingTaskIsNotFound(t *testing.T) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	user := users.seed("user@example.com", domain.RoleUser)

	authz := NewAuthorizer(tasks, users)
	_, err := authz.AuthorizeTaskAccess(context.Background(), principalFor(user), "missing")
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("missing task error = %v, want ErrTaskNotFound", err)
	}

	// An admin sees the same not-found, never a masked denial.
	admin := users.seed("admin@example.com", domain.RoleAdmin)
	_, err = authz.AuthorizeTaskAccess(context.Background(), principalFor(admin), "missing")
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("admin missing task error = %v, want ErrTaskNotFound", err)
	}
}
