package ports

import (
	"context"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
// Comments are stored independently keyed by task id; cascade delete on
// task removal is the explicit DeleteByTask call.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID string, page PageRequest) ([]*domain.Comment, int64, error)
	// DeleteByTask removes every comment belonging to the task and
	// returns the number deleted.
	DeleteByTask(ctx context.Context, taskID string) (int64, error)
}
