package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gradwear/storefront/internal/models"
)

type ReviewRepository interface {
	ListReviews(ctx context.Context, productID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, productID int64, req *models.ReviewBackendRequest) error
}

type reviewRepository struct {
	client *Client
}

func NewReviewRepo(client *Client) ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) ListReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/reviews", productID), nil, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, productID int64, req *models.ReviewBackendRequest) error {
	return r.client.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/reviews", productID), req, nil)
}
