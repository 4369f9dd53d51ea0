package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/ports"
)

// CategoryHandler serves category listing and admin CRUD.
type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /v1/categories — active categories for navigation.
func (h *CategoryHandler) List(c echo.Context) error {
	result, err := h.categories.List(c.Request().Context(), pageFromQuery(c), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// AdminList handles GET /v1/admin/categories — includes inactive categories.
func (h *CategoryHandler) AdminList(c echo.Context) error {
	result, err := h.categories.List(c.Request().Context(), pageFromQuery(c), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// AdminGet handles GET /v1/admin/categories/:id.
func (h *CategoryHandler) AdminGet(c echo.Context) error {
	category, err := h.categories.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create handles POST /v1/admin/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.categories.Create(c.Request().Context(), ports.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update handles PUT /v1/admin/categories/:id.
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.categories.Update(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /v1/admin/categories/:id.
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
