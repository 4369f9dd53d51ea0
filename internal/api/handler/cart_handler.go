package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/ports"
)

// CartHandler resolves "this caller's cart" from the attached identity:
// user carts behind the bearer interceptor, guest carts behind the
// guest-hash interceptor.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get handles GET /v1/cart — the authenticated user's cart, created lazily.
//
// @Summary      Get the caller's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.carts.CartForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// GuestGet handles GET /v1/guest/cart — the guest session's cart.
func (h *CartHandler) GuestGet(c echo.Context) error {
	hash, err := ctxGuestHash(c)
	if err != nil {
		return err
	}

	cart, err := h.carts.CartForGuest(c.Request().Context(), hash)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// AddItem handles POST /v1/cart/items and POST /v1/guest/cart/items. The
// cart is picked by the identity kind the interceptor attached, so the same
// handler serves both owner flavours.
func (h *CartHandler) AddItem(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cart, err := h.carts.AddItem(c.Request().Context(), identity, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}
