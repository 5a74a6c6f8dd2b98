package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// ReviewService is a mock type for the ReviewService type
type ReviewService struct {
	mock.Mock
}

func (_m *ReviewService) ListReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	ret := _m.Called(ctx, productID)

	var r0 []models.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Review)
	}

	return r0, ret.Error(1)
}

func (_m *ReviewService) AddReview(ctx context.Context, productID int64, claims *models.Claims, req *models.CreateReviewRequest) ([]models.Review, error) {
	ret := _m.Called(ctx, productID, claims, req)

	var r0 []models.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Review)
	}

	return r0, ret.Error(1)
}
