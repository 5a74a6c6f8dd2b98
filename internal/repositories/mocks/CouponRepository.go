package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CouponRepository is a mock type for the CouponRepository type
type CouponRepository struct {
	mock.Mock
}

func (_m *CouponRepository) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	ret := _m.Called(ctx)

	var r0 []models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Coupon)
	}

	return r0, ret.Error(1)
}

func (_m *CouponRepository) GetCouponByID(ctx context.Context, id int64) (*models.Coupon, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coupon)
	}

	return r0, ret.Error(1)
}

func (_m *CouponRepository) CreateCoupon(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error) {
	ret := _m.Called(ctx, coupon)

	var r0 *models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coupon)
	}

	return r0, ret.Error(1)
}

func (_m *CouponRepository) UpdateCoupon(ctx context.Context, id int64, coupon *models.Coupon) (*models.Coupon, error) {
	ret := _m.Called(ctx, id, coupon)

	var r0 *models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coupon)
	}

	return r0, ret.Error(1)
}
