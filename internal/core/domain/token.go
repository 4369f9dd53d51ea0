package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenTTL is the fixed validity window of a freshly issued access token.
const TokenTTL = 48 * time.Hour

// AccessToken is an opaque bearer credential bound to a user. The scope set
// is frozen when the token is minted; catalog changes only show up in tokens
// issued afterwards.
type AccessToken struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	Scopes    []string
}

// NewAccessToken mints a fresh token for userID carrying the given scopes,
// expiring exactly TokenTTL from now.
func NewAccessToken(userID string, scopes []string, now time.Time) *AccessToken {
	return &AccessToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(TokenTTL),
		Scopes:    scopes,
	}
}

// IsExpired reports whether the token is past its expiry at instant now.
// Expiry is the only invalidation mechanism; there is no revocation list.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// HasScope reports whether the frozen scope set contains s.
func (t *AccessToken) HasScope(s Scope) bool {
	for _, have := range t.Scopes {
		if have == s.String() {
			return true
		}
	}
	return false
}
