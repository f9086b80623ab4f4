package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// CommentService implements comment use cases. Creation evaluates the
// ownership policy through the shared Authorizer: it needs the resolved
// task for the foreign key anyway, so the check is co-located with that
// lookup instead of duplicated at the routing layer.
type CommentService struct {
	comments ports.CommentRepository
	tasks    ports.TaskRepository
	users    ports.UserRepository
	authz    ports.TaskAuthorizer
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, tasks ports.TaskRepository, users ports.UserRepository, authz ports.TaskAuthorizer, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, tasks: tasks, users: users, authz: authz, logger: logger}
}

// Create attaches a comment to a task. Permitted for admins and for the
// task's current executor; a missing task surfaces as not-found
// regardless of the caller's role. CreatedAt is server-assigned and the
// comment is immutable afterwards.
func (s *CommentService) Create(ctx context.Context, principal domain.Principal, input ports.CommentInput) (*domain.Comment, error) {
	// Counted in runes to match the transport validator; a multibyte
	// comment must not hit a tighter limit here than it passed there.
	if n := utf8.RuneCountInString(input.Content); n == 0 || n > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: must be between 1 and %d characters", domain.ErrInvalidComment, domain.MaxCommentLength)
	}

	task, err := s.authz.AuthorizeTaskAccess(ctx, principal, input.TaskID)
	if err != nil {
		return nil, err
	}

	author, err := s.users.FindByEmail(ctx, principal.Email)
	if err != nil {
		return nil, fmt.Errorf("create comment: resolve author: %w", err)
	}

	comment := &domain.Comment{
		Content:   input.Content,
		TaskID:    task.ID,
		UserID:    author.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.Info().Str("comment_id", created.ID).Str("task_id", task.ID).Str("author", principal.Email).Msg("comment created")
	return created, nil
}

// ListByTask returns a page of comments for a task. Any authenticated
// principal may read comments, but the task must exist.
func (s *CommentService) ListByTask(ctx context.Context, taskID string, page ports.PageRequest) (*ports.CommentPage, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, err
	}

	page = page.Normalize()
	items, total, err := s.comments.ListByTask(ctx, taskID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &ports.CommentPage{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Size:       page.Size,
		TotalPages: page.TotalPages(total),
	}, nil
}
