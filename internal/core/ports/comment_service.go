package ports

import (
	"context"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

// CommentInput carries the data needed to create a comment.
type CommentInput struct {
	Content string
	TaskID  string
}

// CommentPage is a page of comments plus pagination metadata.
type CommentPage struct {
	Items      []*domain.Comment
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// CommentService defines use-case operations for comments. Create
// enforces the ownership policy itself because it needs the resolved
// task either way.
type CommentService interface {
	Create(ctx context.Context, principal domain.Principal, input CommentInput) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID string, page PageRequest) (*CommentPage, error)
}
