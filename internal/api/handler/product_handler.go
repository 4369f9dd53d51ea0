package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/ports"
)

// ProductHandler serves both the storefront (read-only, active products) and
// the admin surface (full CRUD). Scope enforcement happens in the
// interceptor; handlers only see authorized requests.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /v1/products — storefront listing of active products.
//
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page (1-based)"
// @Param        limit  query  int  false  "Items per page"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	result, err := h.products.List(c.Request().Context(), pageFromQuery(c), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /v1/products/:id — storefront detail, active products only.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// AdminList handles GET /v1/admin/products — includes inactive products.
func (h *ProductHandler) AdminList(c echo.Context) error {
	result, err := h.products.List(c.Request().Context(), pageFromQuery(c), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// AdminGet handles GET /v1/admin/products/:id.
func (h *ProductHandler) AdminGet(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  map[string]any
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /v1/admin/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /v1/admin/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Quantity:     req.Quantity,
		Configurable: req.Configurable,
		IsActive:     req.IsActive,
	}
}
