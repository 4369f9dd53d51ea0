package ports

import (
	"context"

	"github.com/velstore/commerce-api/internal/core/domain"
)

// Page carries 1-based pagination parameters for list queries.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID returns domain.ErrProductNotFound on miss. When activeOnly is
	// set, inactive products are treated as absent.
	FindByID(ctx context.Context, id string, activeOnly bool) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Page, activeOnly bool) ([]*domain.Product, int64, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Page, activeOnly bool) ([]*domain.Category, int64, error)
}

// ReviewListFilter narrows the moderation list view.
type ReviewListFilter struct {
	ProductID string
	Status    domain.ReviewStatus
	Page      Page
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ReviewListFilter) ([]*domain.Review, int64, error)
}
