package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CouponService is a mock type for the CouponService type
type CouponService struct {
	mock.Mock
}

func (_m *CouponService) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	ret := _m.Called(ctx)

	var r0 []models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Coupon)
	}

	return r0, ret.Error(1)
}

func (_m *CouponService) GetCoupon(ctx context.Context, id int64) (*models.Coupon, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coupon)
	}

	return r0, ret.Error(1)
}

func (_m *CouponService) CreateCoupon(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error) {
	ret := _m.Called(ctx, coupon)

	var r0 *models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coupon)
	}

	return r0, ret.Error(1)
}

func (_m *CouponService) UpdateCoupon(ctx context.Context, id int64, coupon *models.Coupon) (*models.Coupon, error) {
	ret := _m.Called(ctx, id, coupon)

	var r0 *models.Coupon
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Coupon)
	}

	return r0, ret.Error(1)
}

func (_m *CouponService) GenerateCode(name string) string {
	ret := _m.Called(name)

	return ret.String(0)
}
