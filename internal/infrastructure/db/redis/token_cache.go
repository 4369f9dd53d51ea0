package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/api/metrics"
	"github.com/velstore/commerce-api/internal/core/domain"
)

// TokenCache is a read-through cache for resolved access tokens, keyed by
// the opaque token string with a TTL matching the token's remaining
// lifetime. Tokens are immutable once issued, so cached entries can never go
// stale — they only expire.
//
// The cache fails open: any Redis error is a miss (or a skipped write), and
// the caller falls back to the repository.
type TokenCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewTokenCache creates a TokenCache wrapping the given Redis client.
func NewTokenCache(client *redis.Client, log zerolog.Logger) *TokenCache {
	return &TokenCache{client: client, log: log}
}

type cachedToken struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	ExpiresAt int64    `json:"expires_at"`
	Scopes    []string `json:"scopes"`
}

// Get returns the cached token record, or false on miss or cache failure.
func (c *TokenCache) Get(ctx context.Context, token string) (*domain.AccessToken, bool) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("token cache read failed")
		}
		metrics.TokenCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var entry cachedToken
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.log.Warn().Err(err).Msg("token cache entry corrupt")
		metrics.TokenCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.TokenCacheTotal.WithLabelValues("hit").Inc()
	return &domain.AccessToken{
		ID:        entry.ID,
		Token:     token,
		UserID:    entry.UserID,
		ExpiresAt: time.Unix(entry.ExpiresAt, 0).UTC(),
		Scopes:    entry.Scopes,
	}, true
}

// Set stores the token record until its own expiry. Already-expired tokens
// are not cached; the repository remains the source of truth for those.
func (c *TokenCache) Set(ctx context.Context, token *domain.AccessToken) {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return
	}

	raw, err := json.Marshal(cachedToken{
		ID:        token.ID,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt.Unix(),
		Scopes:    token.Scopes,
	})
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.key(token.Token), raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("token cache write failed")
	}
}

func (c *TokenCache) key(token string) string {
	return fmt.Sprintf("token:%s", token)
}
