package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee CRUD operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	Name           string `json:"name"`
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password"`
	Role           string `json:"role" validate:"omitempty,oneof=PM EMPLOYEE"`
	Classification string `json:"classification" validate:"omitempty,oneof=JUNIOR_DEVELOPER MID_DEVELOPER SENIOR_DEVELOPER"`
}

type updateEmployeeRequest struct {
	ID             string  `json:"id" validate:"required"`
	Name           *string `json:"name"`
	Username       *string `json:"username"`
	Classification *string `json:"classification" validate:"omitempty,oneof=JUNIOR_DEVELOPER MID_DEVELOPER SENIOR_DEVELOPER"`
}

// Create handles POST /api/createEmployee.
//
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/createEmployee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:           req.Name,
		Username:       req.Username,
		Password:       req.Password,
		Role:           req.Role,
		Classification: req.Classification,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, employee)
}

// GetAll handles GET /api/getAllEmployees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Employee
// @Router       /api/getAllEmployees [get]
func (h *EmployeeHandler) GetAll(c echo.Context) error {
	employees, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// GetByID handles GET /api/getEmployeeById?id=...
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /api/getEmployeeById [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	employee, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Update handles PUT /api/updateEmployee. Only the provided fields change;
// role and password are not updatable through this endpoint.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  map[string]string
// @Router       /api/updateEmployee [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), ports.UpdateEmployeeInput{
		ID:             req.ID,
		Name:           req.Name,
		Username:       req.Username,
		Classification: req.Classification,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/deleteEmployee?id=... Employees holding the PM
// role cannot be deleted; their tasks are removed along with them otherwise.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      plain
// @Security     BearerAuth
// @Param        id   query     string  true  "Employee id"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/deleteEmployee [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.String(http.StatusOK, "Employee "+id+" successfully deleted")
}
