package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// TokenResolver resolves a bearer token string to its stored record without
// checking expiry.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.AccessToken, error)
}

// Auth guards a route with "Authorization: Bearer <token>". With an empty
// required scope the route only demands a valid, unexpired token; otherwise
// a valid token lacking the scope is refused with 403.
func Auth(resolver TokenResolver, required domain.Scope) echo.MiddlewareFunc {
	resolve := func(ctx context.Context, credential string) (*domain.Identity, error) {
		token, err := resolver.ResolveToken(ctx, credential)
		if err != nil {
			return nil, err
		}
		if token.IsExpired(time.Now().UTC()) {
			return nil, domain.ErrCredentialExpired
		}
		return &domain.Identity{UserID: token.UserID, Scopes: token.Scopes}, nil
	}

	return intercept("bearer", echo.HeaderAuthorization, "Bearer", resolve, required)
}
