package ports

import (
	"context"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// UserRepository persists accounts and their role assignment.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and its role assignment together and returns
	// the stored row with its generated id.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// TokenRepository persists issued access tokens. Tokens are insert-only;
// expiry is the only invalidation.
type TokenRepository interface {
	Insert(ctx context.Context, token *domain.AccessToken) (*domain.AccessToken, error)
	// FindByToken is a raw lookup with no expiry check; callers decide what
	// an expired token means. Returns domain.ErrTokenNotFound on miss.
	FindByToken(ctx context.Context, token string) (*domain.AccessToken, error)
	// FindLatestByUserID returns the most recently issued token for a user,
	// or domain.ErrTokenNotFound when the user has none.
	FindLatestByUserID(ctx context.Context, userID string) (*domain.AccessToken, error)
}

// GuestRepository looks up pre-provisioned guest hashes. This subsystem only
// validates them; issuance belongs to the cart-creation flow.
type GuestRepository interface {
	// FindByHash returns domain.ErrGuestNotFound on miss.
	FindByHash(ctx context.Context, hash string) (*domain.GuestIdentity, error)
}
