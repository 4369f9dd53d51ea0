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

const cartsCollection = "carts"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type cartItemDoc struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
}

type cartDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerKind string             `bson:"owner_kind"`
	OwnerKey  string             `bson:"owner_key"`
	Items     []cartItemDoc      `bson:"items"`
	CreatedAt int64              `bson:"created_at"`
}

func (d cartDoc) toDomain() *domain.Cart {
	items := make([]domain.CartItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return &domain.Cart{
		ID:        d.ID.Hex(),
		OwnerKind: d.OwnerKind,
		OwnerKey:  d.OwnerKey,
		Items:     items,
		CreatedAt: unixToTime(d.CreatedAt),
	}
}

func (r *CartRepository) FindByOwner(ctx context.Context, ownerKind, ownerKey string) (*domain.Cart, error) {
	var doc cartDoc
	filter := bson.M{"owner_kind": ownerKind, "owner_key": ownerKey}
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CartRepository) Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	doc := cartDoc{
		OwnerKind: cart.OwnerKind,
		OwnerKey:  cart.OwnerKey,
		Items:     []cartItemDoc{},
		CreatedAt: cart.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart: %w", err)
	}

	created := *cart
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CartRepository) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	oid, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		return domain.ErrCartNotFound
	}

	push := bson.M{"$push": bson.M{"items": cartItemDoc{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, push)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}
