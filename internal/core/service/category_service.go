package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/ports"
)

// CategoryService implements category use cases.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// Create inserts a category. The slug is the navigation identifier and must
// be unique; a taken slug maps to a conflict.
func (s *CategoryService) Create(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	if _, err := s.repo.FindBySlug(ctx, input.Slug); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	category := &domain.Category{
		Name:     input.Name,
		Slug:     input.Slug,
		IsActive: input.IsActive,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", created.ID).Str("slug", created.Slug).Msg("category created")
	return created, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.CategoryInput) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Slug = input.Slug
	category.IsActive = input.IsActive

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, page ports.Page, activeOnly bool) (*ports.ListResult[*domain.Category], error) {
	page = clampPage(page)

	items, total, err := s.repo.List(ctx, page, activeOnly)
	if err != nil {
		return nil, err
	}

	return &ports.ListResult[*domain.Category]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages(total, page.Limit),
	}, nil
}
