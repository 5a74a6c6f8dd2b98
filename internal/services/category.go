package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	repository "github.com/gradwear/storefront/internal/repositories"
	"github.com/gradwear/storefront/internal/slug"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.CategorySummary, error)
	GetCategoryBySlug(ctx context.Context, slugValue string) (*models.CategorySummary, error)
	CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.Category, error)
}

type categoryService struct {
	repo      repository.CategoryRepository
	validator *validator.Validate
}

func NewCategoryService(repo repository.CategoryRepository, validate *validator.Validate) CategoryService {
	return &categoryService{repo: repo, validator: validate}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.CategorySummary, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, backendError(err, "Failed to fetch categories")
	}

	summaries := make([]models.CategorySummary, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		summaries = append(summaries, models.CategorySummary{Category: c, Slug: slug.Encode(c.ID, c.Name)})
	}

	return summaries, nil
}

// GetCategoryBySlug accepts "<id>-<name>" or a bare id.
func (s *categoryService) GetCategoryBySlug(ctx context.Context, slugValue string) (*models.CategorySummary, error) {

	id, err := slug.Decode(slugValue)
	if err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, errors.NotFoundError("Category not found").WithError(err)
		}
		return nil, backendError(err, "Failed to fetch category")
	}

	return &models.CategorySummary{Category: category, Slug: slug.Encode(category.ID, category.Name)}, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.Category, error) {

	if err := s.validator.Struct(req); err != nil {
		return nil, errors.ValidationError("Invalid category data").WithDetail(err.Error()).WithError(err)
	}

	category, err := s.repo.CreateCategory(ctx, req)
	if err != nil {
		return nil, backendError(err, "Failed to create category")
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.Category, error) {

	if err := s.validator.Struct(req); err != nil {
		return nil, errors.ValidationError("Invalid category data").WithDetail(err.Error()).WithError(err)
	}

	category, err := s.repo.UpdateCategory(ctx, id, req)
	if err != nil {
		return nil, backendError(err, "Failed to update category")
	}

	return category, nil
}
