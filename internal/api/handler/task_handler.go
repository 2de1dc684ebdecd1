package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/core/ports"
)

// TaskHandler handles HTTP requests for task CRUD operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
	ProjectID   string `json:"project_id" validate:"required"`
	EmployeeID  string `json:"employee_id" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=TO_DO IN_PROGRESS DONE"`
}

type updateTaskRequest struct {
	ID          string  `json:"id" validate:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" validate:"omitempty,oneof=TO_DO IN_PROGRESS DONE"`
	Completed   *bool   `json:"completed"`
}

// Create handles POST /api/createTask.
//
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Router       /api/createTask [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	due, _ := time.Parse(dateLayout, req.DueDate)

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
		ProjectID:   req.ProjectID,
		EmployeeID:  req.EmployeeID,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// GetAll handles GET /api/getAllTasks.
//
// @Summary      List all tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Task
// @Router       /api/getAllTasks [get]
func (h *TaskHandler) GetAll(c echo.Context) error {
	tasks, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// GetByEmployee handles GET /api/getTasksByEmployee?employeeId=...
// Without an explicit employeeId the caller's own tasks are returned.
//
// @Summary      List tasks assigned to an employee
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  query  string  false  "Employee id (defaults to the caller)"
// @Success      200  {array}  domain.Task
// @Router       /api/getTasksByEmployee [get]
func (h *TaskHandler) GetByEmployee(c echo.Context) error {
	employeeID := c.QueryParam("employeeId")
	if employeeID == "" {
		principal, err := ctxPrincipal(c)
		if err != nil {
			return err
		}
		employeeID = principal.EmployeeID
	}

	tasks, err := h.service.GetByEmployee(c.Request().Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// GetByID handles GET /api/getTaskById?id=...
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  map[string]string
// @Router       /api/getTaskById [get]
func (h *TaskHandler) GetByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	task, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Update handles PUT /api/updateTask. Only the provided fields change.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  domain.Task
// @Failure      404   {object}  map[string]string
// @Router       /api/updateTask [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateTaskInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Completed:   req.Completed,
	}
	if req.DueDate != nil {
		due, _ := time.Parse(dateLayout, *req.DueDate)
		input.DueDate = &due
	}

	task, err := h.service.Update(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/deleteTask?id=...
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      plain
// @Security     BearerAuth
// @Param        id   query     string  true  "Task id"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]string
// @Router       /api/deleteTask [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, "Task "+id+" successfully deleted")
}
