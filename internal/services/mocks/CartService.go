package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CartService is a mock type for the CartService type
type CartService struct {
	mock.Mock
}

func (_m *CartService) GetCart(ctx context.Context, userID int64) (*models.Cart, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) AddToCart(ctx context.Context, userID int64, req *models.AddItemRequest, origin string) (*models.CartLine, error) {
	ret := _m.Called(ctx, userID, req, origin)

	var r0 *models.CartLine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartLine)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) UpdateLine(ctx context.Context, userID int64, productID int64, req *models.UpdateLineRequest, origin string) (*models.CartLine, error) {
	ret := _m.Called(ctx, userID, productID, req, origin)

	var r0 *models.CartLine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartLine)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) RemoveLine(ctx context.Context, userID int64, productID int64, origin string) (*models.Cart, error) {
	ret := _m.Called(ctx, userID, productID, origin)

	var r0 *models.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) ClearCart(ctx context.Context, userID int64, confirmed bool, origin string) error {
	ret := _m.Called(ctx, userID, confirmed, origin)

	return ret.Error(0)
}

func (_m *CartService) ValidateCart(ctx context.Context, userID int64) (*models.CartValidation, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.CartValidation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartValidation)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) Checkout(ctx context.Context, userID int64) (*models.CartValidation, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.CartValidation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartValidation)
	}

	return r0, ret.Error(1)
}
