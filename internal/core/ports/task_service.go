package ports

import (
	"context"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

// TaskInput carries all data needed to create or fully update a task.
type TaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AuthorID    string
	ExecutorID  string // empty = unassigned
}

// TaskPage is a page of tasks plus pagination metadata.
type TaskPage struct {
	Items      []*domain.Task
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// TaskService defines use-case operations for tasks. Role and ownership
// policies are enforced at the routing layer; the service enforces data
// invariants (unique title, referenced users must exist).
type TaskService interface {
	Create(ctx context.Context, input TaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, input TaskInput) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByAuthor(ctx context.Context, authorID string, page PageRequest) (*TaskPage, error)
	ListByExecutor(ctx context.Context, executorID string, page PageRequest) (*TaskPage, error)
}

// TaskAuthorizer is the single policy entry point for the
// admin-or-assigned-executor ownership rule. Both the routing layer and
// the comment service go through it so the predicate cannot drift.
type TaskAuthorizer interface {
	// AuthorizeTaskAccess resolves the task and permits access when the
	// principal is an admin or the task's assigned executor. A missing
	// task yields domain.ErrTaskNotFound, a failed policy
	// domain.ErrAccessDenied.
	AuthorizeTaskAccess(ctx context.Context, principal domain.Principal, taskID string) (*domain.Task, error)
}
