package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	repository "github.com/gradwear/storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

type CouponService interface {
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	GetCoupon(ctx context.Context, id int64) (*models.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error)
	UpdateCoupon(ctx context.Context, id int64, coupon *models.Coupon) (*models.Coupon, error)
	GenerateCode(name string) string
}

type couponService struct {
	repo      repository.CouponRepository
	validator *validator.Validate
	intN      func(n int) int
}

func NewCouponService(repo repository.CouponRepository, validate *validator.Validate) CouponService {
	return &couponService{repo: repo, validator: validate, intN: rand.IntN}
}

func (s *couponService) ListCoupons(ctx context.Context) ([]models.Coupon, error) {

	coupons, err := s.repo.ListCoupons(ctx)
	if err != nil {
		return nil, backendError(err, "Failed to fetch coupons")
	}

	if coupons == nil {
		coupons = []models.Coupon{}
	}

	return coupons, nil
}

func (s *couponService) GetCoupon(ctx context.Context, id int64) (*models.Coupon, error) {

	coupon, err := s.repo.GetCouponByID(ctx, id)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, errors.NotFoundError("Coupon not found").WithError(err)
		}
		return nil, backendError(err, "Failed to fetch coupon")
	}

	return coupon, nil
}

func (s *couponService) CreateCoupon(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error) {

	if err := s.validateCoupon(coupon); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateCoupon(ctx, coupon)
	if err != nil {
		return nil, backendError(err, "Failed to create coupon")
	}

	return created, nil
}

func (s *couponService) UpdateCoupon(ctx context.Context, id int64, coupon *models.Coupon) (*models.Coupon, error) {

	if err := s.validateCoupon(coupon); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateCoupon(ctx, id, coupon)
	if err != nil {
		return nil, backendError(err, "Failed to update coupon")
	}

	return updated, nil
}

// validateCoupon normalises the code to upper case before checking it.
func (s *couponService) validateCoupon(c *models.Coupon) error {

	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.Name = strings.TrimSpace(c.Name)

	if err := s.validator.Struct(c); err != nil {
		return errors.ValidationError("Invalid coupon data").WithDetail(err.Error()).WithError(err)
	}

	if !c.DiscountValue.GreaterThan(decimal.Zero) {
		return errors.AddValidationError("discountValue", "must be greater than zero")
	}

	switch c.DiscountType {
	case models.DiscountTypePercentage:
		if c.DiscountValue.GreaterThan(models.MaxPercentageDiscount) {
			return errors.AddValidationError("discountValue", "percentage cannot exceed 100")
		}
	case models.DiscountTypeFixed:
		if c.DiscountValue.GreaterThan(models.MaxFixedDiscount) {
			return errors.AddValidationError("discountValue", "fixed amount cannot exceed 10000")
		}
		if c.MaxDiscount.Valid {
			return errors.AddValidationError("maxDiscount", "only applies to percentage coupons")
		}
	}

	if c.MaxDiscount.Valid && !c.MaxDiscount.Decimal.GreaterThan(decimal.Zero) {
		return errors.AddValidationError("maxDiscount", "must be greater than zero")
	}

	if c.MinimumAmount.Valid && c.MinimumAmount.Decimal.IsNegative() {
		return errors.AddValidationError("minimumAmount", "must not be negative")
	}

	return nil
}

// GenerateCode builds "<up to 4 letters of the name><4 digits>", e.g. "GRAD0427".
func (s *couponService) GenerateCode(name string) string {

	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if prefix.Len() == 4 {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsUpper(r) || unicode.IsDigit(r)) {
			prefix.WriteRune(r)
		}
	}

	if prefix.Len() == 0 {
		prefix.WriteString("CPN")
	}

	return fmt.Sprintf("%s%04d", prefix.String(), s.intN(10000))
}
