package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"habitly/internal/service"
)

const practiceDateLayout = "2006-01-02"

// PracticeHandler handles practice-history endpoints.
type PracticeHandler struct {
	svc     service.PracticeService
	userSvc service.UserService
}

// NewPracticeHandler creates a new practice handler.
func NewPracticeHandler(svc service.PracticeService, userSvc service.UserService) *PracticeHandler {
	return &PracticeHandler{svc: svc, userSvc: userSvc}
}

// RecordPracticeRequest represents a practice record request. Date defaults
// to today when omitted.
type RecordPracticeRequest struct {
	HabitID uint   `json:"habit_id" validate:"required"`
	Date    string `json:"date"`
}

// Record godoc
// @Summary Record a habit practice
// @Tags practices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordPracticeRequest true "Practice data"
// @Success 201 {object} model.PracticeTracker
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /practices [post]
func (h *PracticeHandler) Record(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	var req RecordPracticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(practiceDateLayout, req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	practice, err := h.svc.Record(c.Request().Context(), user.ID, req.HabitID, date)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, practice)
}

// List godoc
// @Summary List practices, optionally for one date
// @Tags practices
// @Produce json
// @Security BearerAuth
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} model.PracticeTracker
// @Router /practices [get]
func (h *PracticeHandler) List(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse(practiceDateLayout, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		practices, err := h.svc.ListByDate(c.Request().Context(), user.ID, date)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, practices)
	}

	practices, err := h.svc.List(c.Request().Context(), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, practices)
}

// Delete godoc
// @Summary Delete a practice record
// @Tags practices
// @Security BearerAuth
// @Param id path int true "Practice ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /practices/{id} [delete]
func (h *PracticeHandler) Delete(c echo.Context) error {
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
