package ports

import (
	"context"
	"time"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// RegisterInput carries a validated registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginResult is the only token material ever echoed to a client.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService implements registration, login and credential resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a token, reusing a still-valid
	// one when present. Unknown email and wrong password are indistinguishable
	// to the caller.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// ResolveToken resolves a bearer token string to its stored record
	// without checking expiry.
	ResolveToken(ctx context.Context, token string) (*domain.AccessToken, error)
	// ResolveGuest resolves a guest hash without checking expiry.
	ResolveGuest(ctx context.Context, hash string) (*domain.GuestIdentity, error)
}
