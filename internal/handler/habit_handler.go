package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"habitly/internal/service"
)

// HabitHandler handles habit endpoints.
type HabitHandler struct {
	svc     service.HabitService
	userSvc service.UserService
}

// NewHabitHandler creates a new habit handler.
func NewHabitHandler(svc service.HabitService, userSvc service.UserService) *HabitHandler {
	return &HabitHandler{svc: svc, userSvc: userSvc}
}

// HabitRequest carries the writable habit fields.
type HabitRequest struct {
	Name       string `json:"name" validate:"required"`
	Trigger    string `json:"trigger"`
	Outcome    string `json:"outcome"`
	Routine    string `json:"routine"`
	CategoryID uint   `json:"category_id" validate:"required"`
}

// UpdateHabitRequest is HabitRequest without required fields; absent fields
// keep their stored values.
type UpdateHabitRequest struct {
	Name       string `json:"name"`
	Trigger    string `json:"trigger"`
	Outcome    string `json:"outcome"`
	Routine    string `json:"routine"`
	CategoryID uint   `json:"category_id"`
}

// Create godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body HabitRequest true "Habit data"
// @Success 201 {object} model.Habit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /habits [post]
func (h *HabitHandler) Create(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	var req HabitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	habit, err := h.svc.Create(c.Request().Context(), user.ID, service.HabitInput{
		Name:       req.Name,
		Trigger:    req.Trigger,
		Outcome:    req.Outcome,
		Routine:    req.Routine,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, habit)
}

// List godoc
// @Summary List the user's habits
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Habit
// @Router /habits [get]
func (h *HabitHandler) List(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	habits, err := h.svc.List(c.Request().Context(), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, habits)
}

// Get godoc
// @Summary Get a habit by id
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Habit ID"
// @Success 200 {object} model.Habit
// @Failure 404 {object} errors.ErrorResponse
// @Router /habits/{id} [get]
func (h *HabitHandler) Get(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	habit, err := h.svc.Get(c.Request().Context(), uint(id), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, habit)
}

// Update godoc
// @Summary Update a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Habit ID"
// @Param request body UpdateHabitRequest true "Habit data"
// @Success 200 {object} model.Habit
// @Failure 404 {object} errors.ErrorResponse
// @Router /habits/{id} [put]
func (h *HabitHandler) Update(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateHabitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	habit, err := h.svc.Update(c.Request().Context(), uint(id), user.ID, service.HabitInput{
		Name:       req.Name,
		Trigger:    req.Trigger,
		Outcome:    req.Outcome,
		Routine:    req.Routine,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary Delete a habit
// @Tags habits
// @Security BearerAuth
// @Param id path int true "Habit ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /habits/{id} [delete]
func (h *HabitHandler) Delete(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id), user.ID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
