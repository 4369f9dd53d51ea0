package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/core/domain"
)

type stubCartRepo struct {
	carts  map[string]*domain.Cart // keyed by kind + "/" + key
	nextID int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[string]*domain.Cart)}
}

func ownerKey(kind, key string) string { return kind + "/" + key }

func (r *stubCartRepo) FindByOwner(_ context.Context, kind, key string) (*domain.Cart, error) {
	if cart, ok := r.carts[ownerKey(kind, key)]; ok {
		clone := *cart
		return &clone, nil
	}
	return nil, domain.ErrCartNotFound
}

func (r *stubCartRepo) Create(_ context.Context, cart *domain.Cart) (*domain.Cart, error) {
	r.nextID++
	clone := *cart
	clone.ID = fmt.Sprintf("cart%d", r.nextID)
	r.carts[ownerKey(cart.OwnerKind, cart.OwnerKey)] = &clone
	stored := clone
	return &stored, nil
}

func (r *stubCartRepo) AddItem(_ context.Context, cartID string, item domain.CartItem) error {
	for _, cart := range r.carts {
		if cart.ID == cartID {
			cart.Items = append(cart.Items, item)
			return nil
		}
	}
	return domain.ErrCartNotFound
}

func TestCartService_LazyCreate(t *testing.T) {
	carts := newStubCartRepo()
	svc := NewCartService(carts, newStubProductRepo(), zerolog.Nop())

	first, err := svc.CartForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("first access: %v", err)
	}
	if first.ID == "" || len(first.Items) != 0 {
		t.Fatalf("expected a fresh empty cart, got %+v", first)
	}

	second, err := svc.CartForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("second access: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second access created a new cart: %s vs %s", second.ID, first.ID)
	}
}

func TestCartService_UserAndGuestCartsAreSeparate(t *testing.T) {
	carts := newStubCartRepo()
	svc := NewCartService(carts, newStubProductRepo(), zerolog.Nop())

	// Same key under both owner kinds must not collide.
	userCart, err := svc.CartForUser(context.Background(), "abc")
	if err != nil {
		t.Fatalf("user cart: %v", err)
	}
	guestCart, err := svc.CartForGuest(context.Background(), "abc")
	if err != nil {
		t.Fatalf("guest cart: %v", err)
	}
	if userCart.ID == guestCart.ID {
		t.Fatalf("user and guest share a cart")
	}
}

func TestCartService_AddItem(t *testing.T) {
	carts := newStubCartRepo()
	products := newStubProductRepo()
	product := seedProduct(t, products, "widget", true)
	svc := NewCartService(carts, products, zerolog.Nop())

	identity := &domain.Identity{UserID: "user-1"}
	cart, err := svc.AddItem(context.Background(), identity, product.ID, 2)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d items, want 1", len(cart.Items))
	}
	item := cart.Items[0]
	if item.ProductID != product.ID || item.Quantity != 2 || item.Price != product.Price {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestCartService_AddItem_GuestIdentity(t *testing.T) {
	carts := newStubCartRepo()
	products := newStubProductRepo()
	product := seedProduct(t, products, "widget", true)
	svc := NewCartService(carts, products, zerolog.Nop())

	identity := &domain.Identity{GuestHash: "hash-1"}
	if _, err := svc.AddItem(context.Background(), identity, product.ID, 1); err != nil {
		t.Fatalf("guest add item: %v", err)
	}

	cart, err := svc.CartForGuest(context.Background(), "hash-1")
	if err != nil {
		t.Fatalf("guest cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("guest cart has %d items, want 1", len(cart.Items))
	}
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	carts := newStubCartRepo()
	products := newStubProductRepo()
	hidden := seedProduct(t, products, "hidden", false)
	svc := NewCartService(carts, products, zerolog.Nop())

	identity := &domain.Identity{UserID: "user-1"}
	if _, err := svc.AddItem(context.Background(), identity, hidden.ID, 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
