package ports

import (
	"context"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// ListResult is the generic paginated page returned by list operations.
type ListResult[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductInput carries the admin-editable fields of a product.
type ProductInput struct {
	Name         string
	Price        float64
	Quantity     int
	Configurable bool
	IsActive     bool
}

// ProductService defines catalog use cases. Storefront reads only see active
// products; admin operations see everything.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string, activeOnly bool) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Page, activeOnly bool) (*ListResult[*domain.Product], error)
}

// CategoryInput carries the admin-editable fields of a category.
type CategoryInput struct {
	Name     string
	Slug     string
	IsActive bool
}

// CategoryService defines category use cases.
type CategoryService interface {
	Create(ctx context.Context, input CategoryInput) (*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, input CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Page, activeOnly bool) (*ListResult[*domain.Category], error)
}

// SubmitReviewInput is a shopper-submitted review. UserID comes from the
// request identity, never from the payload.
type SubmitReviewInput struct {
	ProductID string
	UserID    string
	Title     string
	Content   string
	Rating    int
}

// ReviewService defines review submission and moderation use cases.
type ReviewService interface {
	Submit(ctx context.Context, input SubmitReviewInput) (*domain.Review, error)
	Get(ctx context.Context, id string) (*domain.Review, error)
	Moderate(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ReviewListFilter) (*ListResult[*domain.Review], error)
}
