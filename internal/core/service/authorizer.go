package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// Authorizer evaluates the admin-or-assigned-executor ownership policy.
// It is the only place the predicate lives: the routing layer and the
// comment service both call it, so the two cannot drift apart.
type Authorizer struct {
	tasks ports.TaskRepository
	users ports.UserRepository
}

func NewAuthorizer(tasks ports.TaskRepository, users ports.UserRepository) *Authorizer {
	return &Authorizer{tasks: tasks, users: users}
}

// AuthorizeTaskAccess resolves the task and evaluates the policy:
// admin, or the task's assigned executor. A missing task is reported as
// domain.ErrTaskNotFound, never masked as a denial. The ownership
// comparison is by email: executor id on the task, resolved to the
// stored email, against the principal's email claim.
func (a *Authorizer) AuthorizeTaskAccess(ctx context.Context, principal domain.Principal, taskID string) (*domain.Task, error) {
	task, err := a.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// Role branch first: cheap, no further lookup.
	if principal.IsAdmin() {
		return task, nil
	}

	if !task.Assigned() {
		return nil, domain.ErrAccessDenied
	}

	executor, err := a.users.FindByID(ctx, task.ExecutorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("authorize task access: %w", err)
	}

	if executor.Email != principal.Email {
		return nil, domain.ErrAccessDenied
	}
	return task, nil
}
