package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// WishlistRepository is a mock type for the WishlistRepository type
type WishlistRepository struct {
	mock.Mock
}

func (_m *WishlistRepository) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.WishlistEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.WishlistEntry)
	}

	return r0, ret.Error(1)
}

func (_m *WishlistRepository) IsInWishlist(ctx context.Context, userID int64, productID int64) (bool, error) {
	ret := _m.Called(ctx, userID, productID)

	return ret.Bool(0), ret.Error(1)
}

func (_m *WishlistRepository) AddToWishlist(ctx context.Context, userID int64, productID int64) error {
	ret := _m.Called(ctx, userID, productID)

	return ret.Error(0)
}

func (_m *WishlistRepository) RemoveFromWishlist(ctx context.Context, userID int64, productID int64) error {
	ret := _m.Called(ctx, userID, productID)

	return ret.Error(0)
}
