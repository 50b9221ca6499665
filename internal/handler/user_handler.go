package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"habitly/internal/model"
	"habitly/internal/service"
)

// UserHandler handles the current-user and profile endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ProfilePayload is the partial profile carried by an update request. Absent
// fields stay nil and leave the stored value untouched.
type ProfilePayload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Bio       *string `json:"bio"`
}

// UpdateProfileRequest represents a profile update request.
type UpdateProfileRequest struct {
	EmailAddress string         `json:"emailAddress" validate:"required,email"`
	Profile      ProfilePayload `json:"profile"`
}

// GetMe godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := currentUser(c, h.svc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update the user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Partial profile"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	incoming := &model.Profile{
		FirstName: req.Profile.FirstName,
		LastName:  req.Profile.LastName,
		Bio:       req.Profile.Bio,
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), req.EmailAddress, incoming)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, user)
}
