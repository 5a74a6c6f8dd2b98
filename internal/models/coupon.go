package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var (
	MaxPercentageDiscount = decimal.NewFromInt(100)
	MaxFixedDiscount      = decimal.NewFromInt(10000)
)

type Coupon struct {
	ID            int64               `json:"id,omitempty"`
	Code          string              `json:"code" validate:"required,min=3,max=20,couponcode"`
	Name          string              `json:"name" validate:"required,min=3,max=100"`
	Description   string              `json:"description"`
	DiscountType  DiscountType        `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal     `json:"discountValue"`
	MaxDiscount   decimal.NullDecimal `json:"maxDiscount"`
	MinimumAmount decimal.NullDecimal `json:"minimumAmount"`
	UsageLimit    *int                `json:"usageLimit,omitempty" validate:"omitempty,min=1"`
	UsedCount     int                 `json:"usedCount,omitempty"`
	ExpiryDate    *time.Time          `json:"expiryDate,omitempty"`
	IsActive      bool                `json:"isActive"`
}

type GenerateCouponCodeRequest struct {
	Name string `json:"name" validate:"required"`
}

type GenerateCouponCodeResponse struct {
	Code string `json:"code"`
}
