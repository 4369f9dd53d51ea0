package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/ports"
)

// ReviewHandler serves shopper review submission and admin moderation.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Submit handles POST /v1/products/:id/reviews. The route requires a valid
// token but no scope: any authenticated shopper may review. The author id
// comes from the request identity, never from the payload.
//
// @Summary      Submit a product review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Product id"
// @Param        body  body      submitReviewRequest  true  "Review"
// @Success      201   {object}  map[string]any
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products/{id}/reviews [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.reviews.Submit(c.Request().Context(), ports.SubmitReviewInput{
		ProductID: c.Param("id"),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Rating:    req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// AdminList handles GET /v1/admin/reviews with optional product_id and
// status filters.
func (h *ReviewHandler) AdminList(c echo.Context) error {
	filter := ports.ReviewListFilter{
		ProductID: c.QueryParam("product_id"),
		Status:    domain.ReviewStatus(c.QueryParam("status")),
		Page:      pageFromQuery(c),
	}
	if filter.Status != "" && !domain.ValidReviewStatus(filter.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown review status")
	}

	result, err := h.reviews.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// AdminGet handles GET /v1/admin/reviews/:id.
func (h *ReviewHandler) AdminGet(c echo.Context) error {
	review, err := h.reviews.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Moderate handles PUT /v1/admin/reviews/:id — approval status transition.
func (h *ReviewHandler) Moderate(c echo.Context) error {
	var req moderateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.reviews.Moderate(c.Request().Context(), c.Param("id"), domain.ReviewStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Delete handles DELETE /v1/admin/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.reviews.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
