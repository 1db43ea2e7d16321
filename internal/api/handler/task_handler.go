package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fortune-labs/task-tracker/internal/api/metrics"
	"github.com/fortune-labs/task-tracker/internal/core/domain"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

// TaskHandler handles task CRUD. All operations run behind the auth
// middleware and are scoped to the resolved user id.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type taskRequest struct {
	Title string `json:"title" validate:"required"`
}

// List handles GET /get-tasks.
//
// @Summary      List the authenticated user's tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  messageResponse
// @Router       /get-tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

// Create handles POST /add-task.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /add-task [post]
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.CreateTask(c.Request().Context(), userID, req.Title)
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, task)
}

// Update handles PUT /edit-task/:id. Ownership comes from the verified
// token, never from request parameters.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "Updated task details"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /edit-task/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.UpdateTask(c.Request().Context(), userID, c.Param("id"), req.Title)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /delete-task/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id  path      string  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /delete-task/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}
