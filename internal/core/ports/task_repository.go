package ports

import (
	"context"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Title
// uniqueness is backed by a unique index; a lost duplicate race surfaces
// as domain.ErrTaskExists from Create or Update.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	// ListByAuthor returns a page of tasks created by the given user and
	// the total count of matches.
	ListByAuthor(ctx context.Context, authorID string, page PageRequest) ([]*domain.Task, int64, error)
	ListByExecutor(ctx context.Context, executorID string, page PageRequest) ([]*domain.Task, int64, error)
}
