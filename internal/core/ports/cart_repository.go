package ports

import (
	"context"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// CartRepository persists carts keyed by owner (user id or guest hash).
type CartRepository interface {
	// FindByOwner returns domain.ErrCartNotFound when the owner has no cart.
	FindByOwner(ctx context.Context, ownerKind, ownerKey string) (*domain.Cart, error)
	Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, item domain.CartItem) error
}

// CartService resolves "this caller's cart" from a request identity and
// creates it lazily on first access.
type CartService interface {
	CartForUser(ctx context.Context, userID string) (*domain.Cart, error)
	CartForGuest(ctx context.Context, hash string) (*domain.Cart, error)
	AddItem(ctx context.Context, identity *domain.Identity, productID string, quantity int) (*domain.Cart, error)
}
