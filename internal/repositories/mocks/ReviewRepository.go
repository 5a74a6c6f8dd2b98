package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// ReviewRepository is a mock type for the ReviewRepository type
type ReviewRepository struct {
	mock.Mock
}

func (_m *ReviewRepository) ListReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	ret := _m.Called(ctx, productID)

	var r0 []models.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Review)
	}

	return r0, ret.Error(1)
}

func (_m *ReviewRepository) CreateReview(ctx context.Context, productID int64, req *models.ReviewBackendRequest) error {
	ret := _m.Called(ctx, productID, req)

	return ret.Error(0)
}
