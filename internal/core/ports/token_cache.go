package ports

import (
	"context"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// TokenCache is a read-through cache in front of TokenRepository.FindByToken.
// Implementations must fail open: a cache error is a miss, never a rejected
// credential.
type TokenCache interface {
	Get(ctx context.Context, token string) (*domain.AccessToken, bool)
	Set(ctx context.Context, token *domain.AccessToken)
}
