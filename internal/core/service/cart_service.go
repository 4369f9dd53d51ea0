package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/ports"
)

// CartService resolves carts from request identities. The identity attached
// by an interceptor is trusted here: once a handler runs, the caller has
// already been authenticated.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// CartForUser returns the user's cart, creating an empty one on first access.
func (s *CartService) CartForUser(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.cartForOwner(ctx, domain.CartOwnerUser, userID)
}

// CartForGuest returns the guest's cart, creating an empty one on first access.
func (s *CartService) CartForGuest(ctx context.Context, hash string) (*domain.Cart, error) {
	return s.cartForOwner(ctx, domain.CartOwnerGuest, hash)
}

func (s *CartService) cartForOwner(ctx context.Context, kind, key string) (*domain.Cart, error) {
	cart, err := s.carts.FindByOwner(ctx, kind, key)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return nil, err
	}

	created, err := s.carts.Create(ctx, &domain.Cart{
		OwnerKind: kind,
		OwnerKey:  key,
		Items:     []domain.CartItem{},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("cart_id", created.ID).Str("owner_kind", kind).Msg("cart created")
	return created, nil
}

// AddItem puts an active product into the caller's cart. The cart is looked
// up (or created) through the identity, so a caller can only ever touch its
// own cart.
func (s *CartService) AddItem(ctx context.Context, identity *domain.Identity, productID string, quantity int) (*domain.Cart, error) {
	product, err := s.products.FindByID(ctx, productID, true)
	if err != nil {
		return nil, err
	}

	var cart *domain.Cart
	if identity.IsGuest() {
		cart, err = s.CartForGuest(ctx, identity.GuestHash)
	} else {
		cart, err = s.CartForUser(ctx, identity.UserID)
	}
	if err != nil {
		return nil, err
	}

	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}
	if err := s.carts.AddItem(ctx, cart.ID, item); err != nil {
		return nil, err
	}

	cart.Items = append(cart.Items, item)
	return cart, nil
}
