package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velstore/commerce-api/internal/core/domain"
)

const tokensCollection = "access_tokens"

// TokenRepository persists issued access tokens. Rows are insert-only;
// nothing ever updates or deletes a token, expiry does the invalidation.
type TokenRepository struct {
	coll *mongo.Collection
}

func NewTokenRepository(db *mongo.Database) *TokenRepository {
	return &TokenRepository{coll: db.Collection(tokensCollection)}
}

type tokenDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Token     string             `bson:"token"`
	UserID    string             `bson:"user_id"`
	ExpiresAt int64              `bson:"expires_at"`
	Scopes    []string           `bson:"scopes"`
}

func (d tokenDoc) toDomain() *domain.AccessToken {
	scopes := d.Scopes
	if scopes == nil {
		scopes = []string{}
	}
	return &domain.AccessToken{
		ID:        d.ID.Hex(),
		Token:     d.Token,
		UserID:    d.UserID,
		ExpiresAt: unixToTime(d.ExpiresAt),
		Scopes:    scopes,
	}
}

func (r *TokenRepository) Insert(ctx context.Context, token *domain.AccessToken) (*domain.AccessToken, error) {
	doc := tokenDoc{
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt.Unix(),
		Scopes:    token.Scopes,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert token: %w", err)
	}

	stored := *token
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
	}
	return &stored, nil
}

// FindByToken is a raw lookup with no expiry check. A document that fails to
// decode is reported as not found: a corrupt stored credential must reject
// the caller, not take the service down.
func (r *TokenRepository) FindByToken(ctx context.Context, token string) (*domain.AccessToken, error) {
	res := r.coll.FindOne(ctx, bson.M{"token": token})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	var doc tokenDoc
	if err := res.Decode(&doc); err != nil {
		// The query succeeded but the stored document is unusable; reject
		// the credential instead of surfacing an internal error.
		return nil, domain.ErrTokenNotFound
	}
	return doc.toDomain(), nil
}

// FindLatestByUserID returns the most recently issued token for a user. The
// lookup-then-insert issuance flow is not transactional; a racing login may
// leave two valid tokens and this picks the newer one.
func (r *TokenRepository) FindLatestByUserID(ctx context.Context, userID string) (*domain.AccessToken, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "expires_at", Value: -1}})

	var doc tokenDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find token by user: %w", err)
	}
	return doc.toDomain(), nil
}
