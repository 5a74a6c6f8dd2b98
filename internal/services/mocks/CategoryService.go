package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CategoryService is a mock type for the CategoryService type
type CategoryService struct {
	mock.Mock
}

func (_m *CategoryService) ListCategories(ctx context.Context) ([]models.CategorySummary, error) {
	ret := _m.Called(ctx)

	var r0 []models.CategorySummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CategorySummary)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryService) GetCategoryBySlug(ctx context.Context, slugValue string) (*models.CategorySummary, error) {
	ret := _m.Called(ctx, slugValue)

	var r0 *models.CategorySummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CategorySummary)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryService) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.Category, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.Category, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	return r0, ret.Error(1)
}
