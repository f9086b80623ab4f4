package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// --- Request → Service input ---

func toTaskInput(req taskRequest) ports.TaskInput {
	return ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		AuthorID:    req.AuthorID,
		ExecutorID:  req.ExecutorID,
	}
}

// parsePageRequest reads page, size and sort query parameters.
// Out-of-range values are normalized by the service layer.
func parsePageRequest(c echo.Context) ports.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return ports.PageRequest{
		Page: page,
		Size: size,
		Sort: c.QueryParam("sort"),
	}
}

// --- Service result → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		AuthorID:    t.AuthorID,
		ExecutorID:  t.ExecutorID,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toTaskPageResponse(p *ports.TaskPage) taskPageResponse {
	items := make([]taskResponse, 0, len(p.Items))
	for _, t := range p.Items {
		items = append(items, toTaskResponse(t))
	}
	return taskPageResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: p.TotalPages,
	}
}
