package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// WishlistService is a mock type for the WishlistService type
type WishlistService struct {
	mock.Mock
}

func (_m *WishlistService) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.WishlistEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.WishlistEntry)
	}

	return r0, ret.Error(1)
}

func (_m *WishlistService) IsInWishlist(ctx context.Context, userID int64, productID int64) (bool, error) {
	ret := _m.Called(ctx, userID, productID)

	return ret.Bool(0), ret.Error(1)
}

func (_m *WishlistService) Toggle(ctx context.Context, userID int64, productID int64, origin string) (*models.WishlistToggleResponse, error) {
	ret := _m.Called(ctx, userID, productID, origin)

	var r0 *models.WishlistToggleResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.WishlistToggleResponse)
	}

	return r0, ret.Error(1)
}
