package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-management-api/internal/api/metrics"
	"github.com/taskboard/task-management-api/internal/api/middleware"
	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. Role and
// ownership policies run in the middleware chain before these methods.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task fields"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), toTaskInput(req))
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update handles PUT /api/tasks/:id, a full field replacement.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "Task fields"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), c.Param("id"), toTaskInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateStatus handles PUT /api/tasks/:id/status. Reachable by admins
// and the assigned executor (ownership enforced by RequireTaskAccess).
//
// @Summary      Update task status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Task id"
// @Param        body  body      statusUpdateRequest  true  "New status"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/tasks/{id}/status [put]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /api/tasks/:id. Comments on the task are removed
// with it.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200 {object}  deletedResponse
// @Failure      403 {object}  map[string]any
// @Failure      404 {object}  map[string]any
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "task deleted"})
}

// Get handles GET /api/tasks/:id. RequireTaskAccess already resolved the
// task while evaluating the ownership policy, so reuse it when present.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200 {object}  taskResponse
// @Failure      403 {object}  map[string]any
// @Failure      404 {object}  map[string]any
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	if task, ok := middleware.TaskFromContext(c); ok {
		return c.JSON(http.StatusOK, toTaskResponse(task))
	}

	task, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// ListByAuthor handles GET /api/tasks/by-author?authorId=…
//
// @Summary      List tasks by author
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        authorId  query     string  true   "Author user id"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        size      query     int     false  "Page size (max 100)"
// @Param        sort      query     string  false  "Sort field, prefix with - for descending"
// @Success      200       {object}  taskPageResponse
// @Failure      403       {object}  map[string]any
// @Failure      404       {object}  map[string]any
// @Router       /api/tasks/by-author [get]
func (h *TaskHandler) ListByAuthor(c echo.Context) error {
	authorID := c.QueryParam("authorId")
	if authorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "authorId is required")
	}

	page, err := h.service.ListByAuthor(c.Request().Context(), authorID, parsePageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskPageResponse(page))
}

// ListByExecutor handles GET /api/tasks/by-executor?executorId=…
//
// @Summary      List tasks by executor
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        executorId  query     string  true   "Executor user id"
// @Param        page        query     int     false  "Page number (1-based)"
// @Param        size        query     int     false  "Page size (max 100)"
// @Param        sort        query     string  false  "Sort field, prefix with - for descending"
// @Success      200         {object}  taskPageResponse
// @Failure      403         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /api/tasks/by-executor [get]
func (h *TaskHandler) ListByExecutor(c echo.Context) error {
	executorID := c.QueryParam("executorId")
	if executorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "executorId is required")
	}

	page, err := h.service.ListByExecutor(c.Request().Context(), executorID, parsePageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskPageResponse(page))
}
