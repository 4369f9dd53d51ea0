package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/api/metrics"
	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/ports"
	"github.com/velstore/commerce-api/internal/pkg/password"
)

// AuthService implements registration, login and credential resolution.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenRepository
	guests ports.GuestRepository
	cache  ports.TokenCache
	logger zerolog.Logger

	// now is injectable so tests can cross the expiry boundary.
	now func() time.Time
}

// NewAuthService wires the credential, token and guest stores. cache may be
// nil, in which case every token resolution hits the repository.
func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenRepository,
	guests ports.GuestRepository,
	cache ports.TokenCache,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		guests: guests,
		cache:  cache,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an account with the default role. The duplicate check is
// a read before the insert, not a constraint race guard.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    s.now(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a token, reusing a still-valid
// one when present. Unknown email and wrong password both map to
// ErrInvalidCredentials so the response never reveals whether the email
// exists.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.LoginResult, error) {
	if email == "" || pass == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	ok, err := password.Verify(pass, user.PasswordHash)
	if err != nil {
		if errors.Is(err, password.ErrMalformedHash) {
			// A corrupt stored hash rejects the login instead of surfacing
			// an internal error.
			s.logger.Warn().Str("user_id", user.ID).Msg("stored password hash unreadable")
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueOrReuse(ctx, user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.LoginResult{Token: token.Token, ExpiresAt: token.ExpiresAt}, nil
}

// issueOrReuse returns the user's most recent token unchanged when it is
// still valid. Otherwise it mints a new one with the role's current scope
// set and persists it. Two concurrent logins past expiry can both insert;
// the duplicate is harmless since both tokens validate until expiry.
func (s *AuthService) issueOrReuse(ctx context.Context, user *domain.User) (*domain.AccessToken, error) {
	existing, err := s.tokens.FindLatestByUserID(ctx, user.ID)
	if err == nil && !existing.IsExpired(s.now()) {
		metrics.TokensReusedTotal.Inc()
		return existing, nil
	}
	if err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
		return nil, err
	}

	token := domain.NewAccessToken(user.ID, domain.ScopesForRole(user.Role), s.now())
	stored, err := s.tokens.Insert(ctx, token)
	if err != nil {
		return nil, err
	}

	metrics.TokensIssuedTotal.Inc()
	s.logger.Info().
		Str("user_id", user.ID).
		Time("expires_at", stored.ExpiresAt).
		Msg("access token issued")
	return stored, nil
}

// ResolveToken looks up a bearer token without checking expiry; the
// interceptor owns the expiry decision so the check lives in one place.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.AccessToken, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, token); ok {
			return cached, nil
		}
	}

	stored, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, stored)
	}
	return stored, nil
}

// ResolveGuest looks up a guest hash without checking expiry.
func (s *AuthService) ResolveGuest(ctx context.Context, hash string) (*domain.GuestIdentity, error) {
	return s.guests.FindByHash(ctx, hash)
}
