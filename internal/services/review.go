package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	repository "github.com/gradwear/storefront/internal/repositories"
)

const anonymousReviewer = "عميل"

type ReviewService interface {
	ListReviews(ctx context.Context, productID int64) ([]models.Review, error)
	AddReview(ctx context.Context, productID int64, claims *models.Claims, req *models.CreateReviewRequest) ([]models.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
	now  func() time.Time
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo, now: time.Now}
}

func (s *reviewService) ListReviews(ctx context.Context, productID int64) ([]models.Review, error) {

	reviews, err := s.repo.ListReviews(ctx, productID)
	if err != nil {
		return nil, backendError(err, "Failed to fetch reviews")
	}

	if reviews == nil {
		reviews = []models.Review{}
	}

	return reviews, nil
}

// AddReview puts the new review at the head of the list before the backend confirms it.
// If the write fails the list is returned without it, alongside the error.
func (s *reviewService) AddReview(ctx context.Context, productID int64, claims *models.Claims, req *models.CreateReviewRequest) ([]models.Review, error) {

	if claims == nil || claims.UserID <= 0 {
		return nil, errors.AuthRequiredError("Sign in to write a review")
	}

	comment := strings.TrimSpace(strictPolicy.Sanitize(req.Comment))
	if comment == "" {
		return nil, errors.AddValidationError("comment", "cannot be empty")
	}

	known, err := s.repo.ListReviews(ctx, productID)
	if err != nil {
		known = []models.Review{}
	}

	name := strings.TrimSpace(claims.Name)
	if name == "" {
		name = anonymousReviewer
	}

	body := &models.ReviewBackendRequest{
		CustomerID:   strconv.FormatInt(claims.UserID, 10),
		CustomerName: name,
		Comment:      comment,
	}

	pending := models.Review{
		ProductID:    productID,
		CustomerID:   body.CustomerID,
		CustomerName: body.CustomerName,
		Comment:      comment,
		CreatedAt:    s.now(),
		Pending:      true,
	}
	optimistic := append([]models.Review{pending}, known...)

	if err := s.repo.CreateReview(ctx, productID, body); err != nil {
		// roll back to the last list the backend confirmed
		return known, backendError(err, "Failed to submit review")
	}

	confirmed, err := s.repo.ListReviews(ctx, productID)
	if err != nil {
		return optimistic, nil
	}

	return confirmed, nil
}
