package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/api/middleware"
	"github.com/velstore/commerce-api/internal/core/domain"
)

// ctxIdentity extracts the identity attached by an interceptor and performs
// a fast-fail check before any service call: its presence proves the
// interceptor ran. A route wired without one is a server bug, but the
// response still fails closed with 401.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing request identity")
	}
	return identity, nil
}

// ctxUserID returns the authenticated user's id; guests are refused.
func ctxUserID(c echo.Context) (string, error) {
	identity, err := ctxIdentity(c)
	if err != nil {
		return "", err
	}
	if identity.IsGuest() || identity.UserID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "user identity required")
	}
	return identity.UserID, nil
}

// ctxGuestHash returns the guest hash; authenticated users are refused.
func ctxGuestHash(c echo.Context) (string, error) {
	identity, err := ctxIdentity(c)
	if err != nil {
		return "", err
	}
	if !identity.IsGuest() {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "guest identity required")
	}
	return identity.GuestHash, nil
}
