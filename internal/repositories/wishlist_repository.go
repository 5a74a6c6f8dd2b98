package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gradwear/storefront/internal/models"
)

type WishlistRepository interface {
	ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error)
	IsInWishlist(ctx context.Context, userID, productID int64) (bool, error)
	AddToWishlist(ctx context.Context, userID, productID int64) error
	RemoveFromWishlist(ctx context.Context, userID, productID int64) error
}

type wishlistRepository struct {
	client *Client
}

func NewWishlistRepo(client *Client) WishlistRepository {
	return &wishlistRepository{client: client}
}

func wishlistPath(userID int64) string {
	return fmt.Sprintf("/user/%d/wishlist", userID)
}

func (r *wishlistRepository) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {
	entries := []models.WishlistEntry{}
	if err := r.client.do(ctx, http.MethodGet, wishlistPath(userID), nil, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

type wishlistCheck struct {
	IsInWishlist bool `json:"isInWishlist"`
}

func (r *wishlistRepository) IsInWishlist(ctx context.Context, userID, productID int64) (bool, error) {
	var check wishlistCheck
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/check/%d", wishlistPath(userID), productID), nil, &check); err != nil {
		return false, err
	}

	return check.IsInWishlist, nil
}

type addWishlistBody struct {
	ProductID int64 `json:"productId"`
}

func (r *wishlistRepository) AddToWishlist(ctx context.Context, userID, productID int64) error {
	return r.client.do(ctx, http.MethodPost, wishlistPath(userID), addWishlistBody{ProductID: productID}, nil)
}

func (r *wishlistRepository) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/product/%d", wishlistPath(userID), productID), nil, nil)
}
