package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// identityKey is the single context slot identities travel in. Handlers go
// through the typed accessors below instead of touching the raw key.
const identityKey = "commerce.identity"

// SetIdentity attaches the resolved caller identity to the request context.
func SetIdentity(c echo.Context, identity *domain.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom retrieves the identity attached by an interceptor. The second
// return is false when no interceptor ran on this route.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(*domain.Identity)
	return identity, ok && identity != nil
}
