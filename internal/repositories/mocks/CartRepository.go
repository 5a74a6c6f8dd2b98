package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CartRepository is a mock type for the CartRepository type
type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) GetCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.CartLine
	if rf, ok := ret.Get(0).(func(context.Context, int64) []models.CartLine); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CartLine)
	}

	return r0, ret.Error(1)
}

func (_m *CartRepository) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) error {
	ret := _m.Called(ctx, userID, req)

	return ret.Error(0)
}

func (_m *CartRepository) UpdateQuantity(ctx context.Context, userID int64, productID int64, quantity int) error {
	ret := _m.Called(ctx, userID, productID, quantity)

	return ret.Error(0)
}

func (_m *CartRepository) UpdateOptions(ctx context.Context, userID int64, productID int64, selection models.OptionSelection, attachments *models.Attachments) error {
	ret := _m.Called(ctx, userID, productID, selection, attachments)

	return ret.Error(0)
}

func (_m *CartRepository) RemoveItem(ctx context.Context, userID int64, productID int64) error {
	ret := _m.Called(ctx, userID, productID)

	return ret.Error(0)
}

func (_m *CartRepository) ClearCart(ctx context.Context, userID int64) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}
