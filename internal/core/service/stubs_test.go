package service

import (
	"context"
	"fmt"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubTaskRepo struct {
	tasks map[string]*domain.Task
	seq   int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.Title == task.Title {
			return nil, &domain.TitleInUseError{Title: task.Title}
		}
	}
	r.seq++
	clone := *task
	clone.ID = fmt.Sprintf("t%d", r.seq)
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if _, ok := r.tasks[task.ID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *task
	r.tasks[task.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) ExistsByTitle(_ context.Context, title string) (bool, error) {
	for _, t := range r.tasks {
		if t.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTaskRepo) ListByAuthor(_ context.Context, authorID string, _ ports.PageRequest) ([]*domain.Task, int64, error) {
	return r.filter(func(t *domain.Task) bool { return t.AuthorID == authorID })
}

func (r *stubTaskRepo) ListByExecutor(_ context.Context, executorID string, _ ports.PageRequest) ([]*domain.Task, int64, error) {
	return r.filter(func(t *domain.Task) bool { return t.ExecutorID == executorID })
}

func (r *stubTaskRepo) filter(keep func(*domain.Task) bool) ([]*domain.Task, int64, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if keep(t) {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	seq      int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.seq++
	clone := *comment
	clone.ID = fmt.Sprintf("c%d", r.seq)
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) ListByTask(_ context.Context, taskID string, _ ports.PageRequest) ([]*domain.Comment, int64, error) {
	var out []*domain.Comment
	for _, cm := range r.comments {
		if cm.TaskID == taskID {
			clone := *cm
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubCommentRepo) DeleteByTask(_ context.Context, taskID string) (int64, error) {
	var n int64
	for id, cm := range r.comments {
		if cm.TaskID == taskID {
			delete(r.comments, id)
			n++
		}
	}
	return n, nil
}

// seed inserts a user directly, bypassing registration.
func (r *stubUserRepo) seed(email string, role domain.Role) *domain.User {
	u, _ := r.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	})
	return u
}

// seed inserts a task directly.
func (r *stubTaskRepo) seed(title, authorID, executorID string) *domain.Task {
	t, _ := r.Create(context.Background(), &domain.Task{
		Title:      title,
		Status:     domain.StatusQueued,
		Priority:   domain.PriorityMedium,
		AuthorID:   authorID,
		ExecutorID: executorID,
	})
	return t
}

// principalFor builds a principal matching a seeded user.
func principalFor(u *domain.User) domain.Principal {
	return domain.Principal{Email: u.Email, Role: u.Role}
}
