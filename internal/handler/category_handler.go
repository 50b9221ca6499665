package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"habitly/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	svc     service.CategoryService
	userSvc service.UserService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc service.CategoryService, userSvc service.UserService) *CategoryHandler {
	return &CategoryHandler{svc: svc, userSvc: userSvc}
}

// CategoryRequest carries the writable category fields.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.svc.Create(c.Request().Context(), user.ID, req.Name, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// List godoc
// @Summary List the user's categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	categories, err := h.svc.List(c.Request().Context(), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} model.Category
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	category, err := h.svc.Get(c.Request().Context(), uint(id), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} model.Category
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	user, err := currentUser(c, h.userSvc)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	category, err := h.svc.Update(c.Request().Context(), uint(id), user.ID, req.Name, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
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
