package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// TaskService implements task use cases. Role and ownership policies are
// enforced before these methods run; the service owns the data
// invariants: unique titles and valid user references.
type TaskService struct {
	tasks    ports.TaskRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, comments ports.CommentRepository, users ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, comments: comments, users: users, logger: logger}
}

// Create inserts a new task. The title-existence check is check-then-act;
// the unique index on title converts a lost race into
// domain.ErrTaskExists at insert time.
func (s *TaskService) Create(ctx context.Context, input ports.TaskInput) (*domain.Task, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	exists, err := s.tasks.ExistsByTitle(ctx, input.Title)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if exists {
		return nil, &domain.TitleInUseError{Title: input.Title}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AuthorID:    input.AuthorID,
		ExecutorID:  input.ExecutorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info().Str("task_id", created.ID).Str("title", created.Title).Msg("task created")
	return created, nil
}

// Update replaces every mutable field of an existing task.
func (s *TaskService) Update(ctx context.Context, id string, input ports.TaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	if input.Title != task.Title {
		exists, err := s.tasks.ExistsByTitle(ctx, input.Title)
		if err != nil {
			return nil, fmt.Errorf("update task: %w", err)
		}
		if exists {
			return nil, &domain.TitleInUseError{Title: input.Title}
		}
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.AuthorID = input.AuthorID
	task.ExecutorID = input.ExecutorID
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.tasks.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.logger.Info().Str("task_id", updated.ID).Msg("task updated")
	return updated, nil
}

// UpdateStatus sets the task status. Validation is membership-only: any
// of the four statuses may replace any other.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.tasks.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}

	s.logger.Info().Str("task_id", updated.ID).Str("status", string(status)).Msg("task status updated")
	return updated, nil
}

// Delete removes a task and, explicitly, every comment that belonged to
// it. The cascade is a plain delete-by-task call, not an object-graph
// traversal.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	removed, err := s.comments.DeleteByTask(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task comments: %w", err)
	}

	s.logger.Info().Str("task_id", id).Int64("comments_removed", removed).Msg("task deleted")
	return nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// ListByAuthor returns a page of tasks created by the given user.
func (s *TaskService) ListByAuthor(ctx context.Context, authorID string, page ports.PageRequest) (*ports.TaskPage, error) {
	if err := s.requireUser(ctx, authorID); err != nil {
		return nil, err
	}

	page = page.Normalize()
	items, total, err := s.tasks.ListByAuthor(ctx, authorID, page)
	if err != nil {
		return nil, fmt.Errorf("list tasks by author: %w", err)
	}
	return taskPage(items, total, page), nil
}

// ListByExecutor returns a page of tasks assigned to the given user.
func (s *TaskService) ListByExecutor(ctx context.Context, executorID string, page ports.PageRequest) (*ports.TaskPage, error) {
	if err := s.requireUser(ctx, executorID); err != nil {
		return nil, err
	}

	page = page.Normalize()
	items, total, err := s.tasks.ListByExecutor(ctx, executorID, page)
	if err != nil {
		return nil, fmt.Errorf("list tasks by executor: %w", err)
	}
	return taskPage(items, total, page), nil
}

// validateInput checks the user references on a create/update payload.
// Status and priority values are already shape-checked at the transport
// layer, but membership is re-checked here so the service cannot be
// driven into an invalid state by another caller.
func (s *TaskService) validateInput(ctx context.Context, input ports.TaskInput) error {
	if !input.Status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}
	if !input.Priority.IsValid() {
		return fmt.Errorf("invalid task priority %q", input.Priority)
	}
	if err := s.requireUser(ctx, input.AuthorID); err != nil {
		return err
	}
	if input.ExecutorID != "" {
		return s.requireUser(ctx, input.ExecutorID)
	}
	return nil
}

func (s *TaskService) requireUser(ctx context.Context, userID string) error {
	ok, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %s: %w", userID, err)
	}
	if !ok {
		return fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
	}
	return nil
}

func taskPage(items []*domain.Task, total int64, page ports.PageRequest) *ports.TaskPage {
	return &ports.TaskPage{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Size:       page.Size,
		TotalPages: page.TotalPages(total),
	}
}
