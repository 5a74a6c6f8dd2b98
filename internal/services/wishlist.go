package service

import (
	"context"

	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/models"
	repository "github.com/gradwear/storefront/internal/repositories"
)

type WishlistService interface {
	ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error)
	IsInWishlist(ctx context.Context, userID, productID int64) (bool, error)
	Toggle(ctx context.Context, userID, productID int64, origin string) (*models.WishlistToggleResponse, error)
}

type wishlistService struct {
	repo      repository.WishlistRepository
	publisher events.Publisher
}

func NewWishlistService(repo repository.WishlistRepository, publisher events.Publisher) WishlistService {
	return &wishlistService{repo: repo, publisher: publisher}
}

func (s *wishlistService) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListWishlist(ctx, userID)
	if err != nil {
		return nil, backendError(err, "Failed to fetch wishlist")
	}

	if entries == nil {
		entries = []models.WishlistEntry{}
	}

	return entries, nil
}

func (s *wishlistService) IsInWishlist(ctx context.Context, userID, productID int64) (bool, error) {

	if err := requireUser(userID); err != nil {
		return false, err
	}

	in, err := s.repo.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return false, backendError(err, "Failed to check wishlist")
	}

	return in, nil
}

// Toggle flips membership and publishes exactly one wishlist.changed per call.
func (s *wishlistService) Toggle(ctx context.Context, userID, productID int64, origin string) (*models.WishlistToggleResponse, error) {

	in, err := s.IsInWishlist(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if in {
		err = s.repo.RemoveFromWishlist(ctx, userID, productID)
	} else {
		err = s.repo.AddToWishlist(ctx, userID, productID)
	}
	if err != nil {
		return nil, backendError(err, "Failed to update wishlist")
	}

	s.publisher.Publish(ctx, events.Event{
		Topic:   events.TopicWishlist,
		UserID:  userID,
		Origin:  origin,
		Payload: events.Payload{ProductID: productID},
	})

	return &models.WishlistToggleResponse{ProductID: productID, InWishlist: !in}, nil
}
