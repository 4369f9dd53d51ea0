package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velstore/commerce-api/internal/core/domain"
)

const guestHashesCollection = "guest_hashes"

// GuestRepository looks up pre-provisioned guest hashes. This repository is
// read-only by design: hashes are written by the cart-creation flow, not by
// the auth subsystem.
type GuestRepository struct {
	coll *mongo.Collection
}

func NewGuestRepository(db *mongo.Database) *GuestRepository {
	return &GuestRepository{coll: db.Collection(guestHashesCollection)}
}

type guestDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Hash      string             `bson:"hash"`
	ExpiresAt int64              `bson:"expires_at"`
}

func (r *GuestRepository) FindByHash(ctx context.Context, hash string) (*domain.GuestIdentity, error) {
	res := r.coll.FindOne(ctx, bson.M{"hash": hash})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest hash: %w", err)
	}

	var doc guestDoc
	if err := res.Decode(&doc); err != nil {
		// Unusable stored hash rejects the caller, same as a miss.
		return nil, domain.ErrGuestNotFound
	}

	return &domain.GuestIdentity{
		ID:        doc.ID.Hex(),
		Hash:      doc.Hash,
		ExpiresAt: unixToTime(doc.ExpiresAt),
	}, nil
}
