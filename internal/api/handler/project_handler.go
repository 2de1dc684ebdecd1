package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/core/ports"
)

// dateLayout is the wire format for project and task dates.
const dateLayout = "2006-01-02"

// ProjectHandler handles HTTP requests for project CRUD operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status" validate:"omitempty,oneof=planned active completed on_hold"`
}

type updateProjectRequest struct {
	ID          string  `json:"id" validate:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" validate:"omitempty,oneof=planned active completed on_hold"`
}

// Create handles POST /api/createProject.
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Router       /api/createProject [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// GetAll handles GET /api/getAllProjects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /api/getAllProjects [get]
func (h *ProjectHandler) GetAll(c echo.Context) error {
	projects, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// GetByID handles GET /api/getProjectById?id=...
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /api/getProjectById [get]
func (h *ProjectHandler) GetByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	project, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// GetByEmployee handles GET /api/getProjectsByEmployee?employeeId=...
// Without an explicit employeeId the caller's own projects are returned.
//
// @Summary      List projects with tasks assigned to an employee
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  query  string  false  "Employee id (defaults to the caller)"
// @Success      200  {array}  domain.Project
// @Router       /api/getProjectsByEmployee [get]
func (h *ProjectHandler) GetByEmployee(c echo.Context) error {
	employeeID := c.QueryParam("employeeId")
	if employeeID == "" {
		principal, err := ctxPrincipal(c)
		if err != nil {
			return err
		}
		employeeID = principal.EmployeeID
	}

	projects, err := h.service.GetByEmployee(c.Request().Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Update handles PUT /api/updateProject. Only the provided fields change.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /api/updateProject [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateProjectInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.StartDate != nil {
		start, _ := time.Parse(dateLayout, *req.StartDate)
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := time.Parse(dateLayout, *req.EndDate)
		input.EndDate = &end
	}

	project, err := h.service.Update(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/deleteProject?id=...
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      plain
// @Security     BearerAuth
// @Param        id   query     string  true  "Project id"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]string
// @Router       /api/deleteProject [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, "Project "+id+" successfully deleted")
}
