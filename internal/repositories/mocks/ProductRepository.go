package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// ProductRepository is a mock type for the ProductRepository type
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	ret := _m.Called(ctx)

	var r0 []models.Product
	if rf, ok := ret.Get(0).(func(context.Context) []models.Product); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	ret := _m.Called(ctx, categoryID)

	var r0 []models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Product); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) DefaultOptions(ctx context.Context, productType string) ([]models.OptionDefinition, error) {
	ret := _m.Called(ctx, productType)

	var r0 []models.OptionDefinition
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.OptionDefinition)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) CreateProduct(ctx context.Context, req *models.UpsertProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) UpdateProduct(ctx context.Context, id int64, req *models.UpsertProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

// NewProductRepository creates a new instance of ProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
