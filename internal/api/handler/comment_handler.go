package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-management-api/internal/api/metrics"
	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
	TaskID  string `json:"task_id" validate:"required"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type commentPageResponse struct {
	Items      []commentResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// Create handles POST /api/comments. The ownership policy (admin or the
// task's current executor) is evaluated inside the service together with
// the task lookup it needs for the foreign key.
//
// @Summary      Create a comment on a task
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      commentRequest  true  "Comment content and target task"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), principal, ports.CommentInput{
		Content: req.Content,
		TaskID:  req.TaskID,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// ListByTask handles GET /api/comments/by-task/:taskId.
//
// @Summary      List comments for a task
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  path      string  true   "Task id"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        size    query     int     false  "Page size (max 100)"
// @Param        sort    query     string  false  "Sort field, prefix with - for descending"
// @Success      200     {object}  commentPageResponse
// @Failure      404     {object}  map[string]any
// @Router       /api/comments/by-task/{taskId} [get]
func (h *CommentHandler) ListByTask(c echo.Context) error {
	page, err := h.service.ListByTask(c.Request().Context(), c.Param("taskId"), parsePageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentPageResponse(page))
}

func toCommentResponse(cm *domain.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		Content:   cm.Content,
		TaskID:    cm.TaskID,
		UserID:    cm.UserID,
		CreatedAt: cm.CreatedAt.UTC(),
	}
}

func toCommentPageResponse(p *ports.CommentPage) commentPageResponse {
	items := make([]commentResponse, 0, len(p.Items))
	for _, cm := range p.Items {
		items = append(items, toCommentResponse(cm))
	}
	return commentPageResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: p.TotalPages,
	}
}
