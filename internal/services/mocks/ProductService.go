package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// ProductService is a mock type for the ProductService type
type ProductService struct {
	mock.Mock
}

func (_m *ProductService) ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedResponse, error) {
	ret := _m.Called(ctx, filter)

	var r0 *models.PaginatedResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PaginatedResponse)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) GetProductBySlug(ctx context.Context, slugValue string, userID int64) (*models.ProductView, error) {
	ret := _m.Called(ctx, slugValue, userID)

	var r0 *models.ProductView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ProductView)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) DefaultOptions(ctx context.Context, productType string) ([]models.OptionDefinition, error) {
	ret := _m.Called(ctx, productType)

	var r0 []models.OptionDefinition
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.OptionDefinition)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) CreateProduct(ctx context.Context, req *models.UpsertProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpsertProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}
