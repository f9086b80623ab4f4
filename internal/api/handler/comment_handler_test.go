package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

type stubCommentService struct {
	comment      *domain.Comment
	page         *ports.CommentPage
	err          error
	gotPrincipal domain.Principal
	gotInput     ports.CommentInput
	gotTaskID    string
}

func (s *stubCommentService) Create(_ context.Context, principal domain.Principal, input ports.CommentInput) (*domain.Comment, error) {
	s.gotPrincipal, s.gotInput = principal, input
	return s.comment, s.err
}

func (s *stubCommentService) ListByTask(_ context.Context, taskID string, _ ports.PageRequest) (*ports.CommentPage, error) {
	s.gotTaskID = taskID
	return s.page, s.err
}

func TestCommentHandler_Create(t *testing.T) {
	svc := &stubCommentService{comment: &domain.Comment{
		ID:      "c1",
		Content: "halfway there",
		TaskID:  "t1",
		UserID:  "u2",
	}}
	h := NewCommentHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/comments", `{"content":"halfway there","task_id":"t1"}`)
	principal := domain.Principal{Email: "exec@example.com", Role: domain.RoleUser}
	c.Set("principal", principal)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.gotPrincipal != principal {
		t.Fatalf("principal = %+v", svc.gotPrincipal)
	}
	if svc.gotInput.TaskID != "t1" || svc.gotInput.Content != "halfway there" {
		t.Fatalf("input = %+v", svc.gotInput)
	}

	var resp commentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "c1" || resp.UserID != "u2" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestCommentHandler_CreateWithoutPrincipal(t *testing.T) {
	h := NewCommentHandler(&stubCommentService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/comments", `{"content":"hi","task_id":"t1"}`)
	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401", err)
	}
}

func TestCommentHandler_CreateValidation(t *testing.T) {
	h := NewCommentHandler(&stubCommentService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/comments", `{"task_id":"t1"}`)
	c.Set("principal", domain.Principal{Email: "exec@example.com", Role: domain.RoleUser})
	err := h.Create(c)
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationErrors", err)
	}
	if _, ok := ve["content"]; !ok {
		t.Fatalf("content missing from %v", ve)
	}
}

func TestCommentHandler_CreateDeniedPassesThrough(t *testing.T) {
	h := NewCommentHandler(&stubCommentService{err: domain.ErrAccessDenied})

	c, _ := newJSONContext(t, http.MethodPost, "/api/comments", `{"content":"hi","task_id":"t1"}`)
	c.Set("principal", domain.Principal{Email: "other@example.com", Role: domain.RoleUser})
	if err := h.Create(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("error = %v, want ErrAccessDenied", err)
	}
}

func TestCommentHandler_ListByTask(t *testing.T) {
	svc := &stubCommentService{page: &ports.CommentPage{
		Items:      []*domain.Comment{{ID: "c1", TaskID: "t1", UserID: "u2", Content: "note"}},
		Total:      1,
		Page:       1,
		Size:       20,
		TotalPages: 1,
	}}
	h := NewCommentHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/comments/by-task/t1", "")
	c.SetParamNames("taskId")
	c.SetParamValues("t1")
	if err := h.ListByTask(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if svc.gotTaskID != "t1" {
		t.Fatalf("task id = %q", svc.gotTaskID)
	}

	var resp commentPageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("page = %+v", resp)
	}
}
