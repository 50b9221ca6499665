package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"habitly/internal/metrics"
	"habitly/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
	metrics     metrics.Recorder
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, metrics metrics.Recorder) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: metrics}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

// LoginResponse carries the session token for a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user,omitempty"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.EmailAddress, req.Password)
	if err != nil {
		return domainError(err)
	}

	h.metrics.RecordRegistration()
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary Authenticate and obtain a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.EmailAddress, req.Password)
	if err != nil {
		h.metrics.RecordLogin(false)
		return domainError(err)
	}

	h.metrics.RecordLogin(true)
	h.metrics.RecordTokenIssued()
	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
}
