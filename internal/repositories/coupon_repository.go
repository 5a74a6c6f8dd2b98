package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gradwear/storefront/internal/models"
)

type CouponRepository interface {
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	GetCouponByID(ctx context.Context, id int64) (*models.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error)
	UpdateCoupon(ctx context.Context, id int64, coupon *models.Coupon) (*models.Coupon, error)
}

type couponRepository struct {
	client *Client
}

func NewCouponRepo(client *Client) CouponRepository {
	return &couponRepository{client: client}
}

func (r *couponRepository) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	coupons := []models.Coupon{}
	if err := r.client.do(ctx, http.MethodGet, "/coupons", nil, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *couponRepository) GetCouponByID(ctx context.Context, id int64) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/coupons/%d", id), nil, &coupon); err != nil {
		return nil, err
	}

	return &coupon, nil
}

func (r *couponRepository) CreateCoupon(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error) {
	saved := *coupon
	if err := r.client.do(ctx, http.MethodPost, "/coupons", coupon, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *couponRepository) UpdateCoupon(ctx context.Context, id int64, coupon *models.Coupon) (*models.Coupon, error) {
	saved := *coupon
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("/coupons/%d", id), coupon, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}
