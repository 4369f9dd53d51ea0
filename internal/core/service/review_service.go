package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/ports"
)

// ReviewService implements review submission and moderation.
type ReviewService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, products ports.ProductRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, logger: logger}
}

// Submit stores a shopper review against an active product. Reviews start in
// pending state and only show up publicly once moderated.
func (s *ReviewService) Submit(ctx context.Context, input ports.SubmitReviewInput) (*domain.Review, error) {
	if _, err := s.products.FindByID(ctx, input.ProductID, true); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		Rating:    input.Rating,
		Status:    domain.ReviewPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("review_id", created.ID).
		Str("product_id", created.ProductID).
		Int("rating", created.Rating).
		Msg("review submitted")
	return created, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

// Moderate transitions a review's approval status.
func (s *ReviewService) Moderate(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	review.Status = status
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if _, err := s.reviews.FindByID(ctx, id); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, id)
}

func (s *ReviewService) List(ctx context.Context, filter ports.ReviewListFilter) (*ports.ListResult[*domain.Review], error) {
	filter.Page = clampPage(filter.Page)

	items, total, err := s.reviews.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListResult[*domain.Review]{
		Items:      items,
		Total:      total,
		Page:       filter.Page.Page,
		Limit:      filter.Page.Limit,
		TotalPages: totalPages(total, filter.Page.Limit),
	}, nil
}
