package service_test

import (
	"context"
	"testing"

	appErrors "github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/repositories/mocks"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCoupon() *models.Coupon {
	return &models.Coupon{
		Code:          "grad-2025",
		Name:          "خصم التخرج",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(15),
		MaxDiscount:   decimal.NewNullDecimal(decimal.NewFromInt(50)),
		IsActive:      true,
	}
}

func TestCreateCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Code is upper-cased", func(t *testing.T) {
		// Arrange
		repo := new(mocks.CouponRepository)
		couponService := service.NewCouponService(repo, utils.NewValidator())
		repo.On("CreateCoupon", ctx, mock.MatchedBy(func(c *models.Coupon) bool {
			return c.Code == "GRAD-2025"
		})).Return(&models.Coupon{ID: 3, Code: "GRAD-2025"}, nil).Once()

		// Act
		coupon, err := couponService.CreateCoupon(ctx, validCoupon())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), coupon.ID)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		mutate func(*models.Coupon)
	}{
		{"Short code", func(c *models.Coupon) { c.Code = "AB" }},
		{"Long code", func(c *models.Coupon) { c.Code = "ABCDEFGHIJKLMNOPQRSTU" }},
		{"Code with spaces", func(c *models.Coupon) { c.Code = "GRAD 25" }},
		{"Short name", func(c *models.Coupon) { c.Name = "خص" }},
		{"Zero value", func(c *models.Coupon) { c.DiscountValue = decimal.Zero }},
		{"Percentage above 100", func(c *models.Coupon) { c.DiscountValue = decimal.NewFromInt(101) }},
		{"Fixed above 10000", func(c *models.Coupon) {
			c.DiscountType = models.DiscountTypeFixed
			c.MaxDiscount = decimal.NullDecimal{}
			c.DiscountValue = decimal.NewFromInt(10001)
		}},
		{"Cap on fixed coupon", func(c *models.Coupon) {
			c.DiscountType = models.DiscountTypeFixed
			c.DiscountValue = decimal.NewFromInt(100)
		}},
		{"Negative minimum", func(c *models.Coupon) {
			c.MinimumAmount = decimal.NewNullDecimal(decimal.NewFromInt(-1))
		}},
		{"Unknown type", func(c *models.Coupon) { c.DiscountType = "bogo" }},
	}

	for _, tt := range tests {
		t.Run("Failure - "+tt.name, func(t *testing.T) {
			repo := new(mocks.CouponRepository)
			couponService := service.NewCouponService(repo, utils.NewValidator())
			coupon := validCoupon()
			tt.mutate(coupon)

			_, err := couponService.CreateCoupon(ctx, coupon)

			assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
			repo.AssertNotCalled(t, "CreateCoupon", mock.Anything, mock.Anything)
		})
	}

	t.Run("Success - Fixed coupon at the limit", func(t *testing.T) {
		repo := new(mocks.CouponRepository)
		couponService := service.NewCouponService(repo, utils.NewValidator())
		coupon := validCoupon()
		coupon.DiscountType = models.DiscountTypeFixed
		coupon.MaxDiscount = decimal.NullDecimal{}
		coupon.DiscountValue = decimal.NewFromInt(10000)
		repo.On("CreateCoupon", ctx, coupon).Return(coupon, nil).Once()

		_, err := couponService.CreateCoupon(ctx, coupon)

		assert.NoError(t, err)
	})
}

func TestGetCoupon(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.CouponRepository)
	couponService := service.NewCouponService(repo, utils.NewValidator())

	repo.On("GetCouponByID", ctx, int64(8)).Return(nil, appErrors.NotFoundError("missing")).Once()

	_, err := couponService.GetCoupon(ctx, 8)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Coupon not found", appErr.Message)
}

func TestGenerateCode(t *testing.T) {
	couponService := service.NewCouponService(new(mocks.CouponRepository), utils.NewValidator())

	tests := []struct {
		name    string
		input   string
		pattern string
	}{
		{"Latin name", "Grad Sale", `^GRAD\d{4}$`},
		{"Spaces removed", "a1 b", `^A1B\d{4}$`},
		{"Arabic name falls back", "خصم التخرج", `^CPN\d{4}$`},
		{"Empty name", "", `^CPN\d{4}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Regexp(t, tt.pattern, couponService.GenerateCode(tt.input))
		})
	}
}
