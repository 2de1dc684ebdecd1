package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name           string `json:"name"`
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Role           string `json:"role" validate:"omitempty,oneof=PM EMPLOYEE"`
	Classification string `json:"classification" validate:"omitempty,oneof=JUNIOR_DEVELOPER MID_DEVELOPER SENIOR_DEVELOPER"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// invalidCredentials is the single body returned for every login failure so
// that "no such user" and "wrong password" are indistinguishable.
var invalidCredentials = messageResponse{Message: "Invalid credentials"}

// Login authenticates an employee and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  messageResponse
// @Failure      429  {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	if username == "" {
		username = c.QueryParam("username")
	}
	password := c.FormValue("password")
	if password == "" {
		password = c.QueryParam("password")
	}

	token, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrTooManyAttempts) {
			return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "Too many failed login attempts"})
		}
		return c.JSON(http.StatusUnauthorized, invalidCredentials)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Register creates a new employee account. No token is returned; a subsequent
// login is required.
//
// @Summary      Register a new employee
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body      registerRequest  true  "Employee registration details"
// @Success      201   {string}  string
// @Failure      400   {object}  map[string]string
// @Failure      409   {string}  string
// @Failure      500   {string}  string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:           req.Name,
		Username:       req.Username,
		Password:       req.Password,
		Role:           req.Role,
		Classification: req.Classification,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.String(http.StatusConflict, "Username already exists")
		case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrInvalidClassification),
			errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.String(http.StatusInternalServerError, "Error during registration")
	}

	return c.String(http.StatusCreated, "Employee registered successfully")
}
