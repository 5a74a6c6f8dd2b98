package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CategoryRepository is a mock type for the CategoryRepository type
type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	ret := _m.Called(ctx)

	var r0 []models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.Category, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.Category, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Category)
	}

	return r0, ret.Error(1)
}
