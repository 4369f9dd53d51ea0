package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// HeaderGuestToken carries the anonymous guest credential.
const HeaderGuestToken = "x-guest-token"

// GuestResolver resolves a guest hash to its stored record without checking
// expiry.
type GuestResolver interface {
	ResolveGuest(ctx context.Context, hash string) (*domain.GuestIdentity, error)
}

// Guest guards a route with the x-guest-token header. Guests have no scope
// concept: presence and non-expiry of the hash is the whole decision.
func Guest(resolver GuestResolver) echo.MiddlewareFunc {
	resolve := func(ctx context.Context, credential string) (*domain.Identity, error) {
		guest, err := resolver.ResolveGuest(ctx, credential)
		if err != nil {
			return nil, err
		}
		if guest.IsExpired(time.Now().UTC()) {
			return nil, domain.ErrCredentialExpired
		}
		return &domain.Identity{GuestHash: guest.Hash}, nil
	}

	return intercept("guest", HeaderGuestToken, "", resolve, "")
}
