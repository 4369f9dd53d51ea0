package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// clampPage normalises pagination input: 1-based page, limit capped at
// maxPageLimit.
func clampPage(p ports.Page) ports.Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ProductService implements catalog product use cases.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:         input.Name,
		Price:        input.Price,
		Quantity:     input.Quantity,
		Configurable: input.Configurable,
		IsActive:     input.IsActive,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string, activeOnly bool) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id, activeOnly)
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.Configurable = input.Configurable
	product.IsActive = input.IsActive

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id, false); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, page ports.Page, activeOnly bool) (*ports.ListResult[*domain.Product], error) {
	page = clampPage(page)

	items, total, err := s.repo.List(ctx, page, activeOnly)
	if err != nil {
		return nil, err
	}

	return &ports.ListResult[*domain.Product]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages(total, page.Limit),
	}, nil
}
