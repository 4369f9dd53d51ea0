package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/velstore/commerce-api/internal/core/domain"
	"github.com/velstore/commerce-api/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("c%d", r.nextID)
	r.categories[clone.ID] = &clone
	stored := clone
	return &stored, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context, page ports.Page, activeOnly bool) ([]*domain.Category, int64, error) {
	var all []*domain.Category
	for _, c := range r.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		clone := *c
		all = append(all, &clone)
	}
	return all, int64(len(all)), nil
}

func TestCategoryService_Create(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CategoryInput{Name: "Shoes", Slug: "shoes", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Slug != "shoes" {
		t.Fatalf("unexpected category: %+v", created)
	}
}

func TestCategoryService_Create_DuplicateSlug(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "Shoes", Slug: "shoes"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "Sneakers", Slug: "shoes"}); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.CategoryInput{Name: "x", Slug: "x"}); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_ListActiveOnly(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "Shoes", Slug: "shoes", IsActive: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "Drafts", Slug: "drafts", IsActive: false}); err != nil {
		t.Fatalf("create: %v", err)
	}

	storefront, err := svc.List(context.Background(), ports.Page{}, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if storefront.Total != 1 {
		t.Fatalf("storefront total = %d, want 1", storefront.Total)
	}

	admin, err := svc.List(context.Background(), ports.Page{}, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if admin.Total != 2 {
		t.Fatalf("admin total = %d, want 2", admin.Total)
	}
}
