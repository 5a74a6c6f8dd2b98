package models

import "time"

type WishlistEntry struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	UserID    int64     `json:"userId"`
	AddedAt   time.Time `json:"addedAt"`
	Product   *Product  `json:"product,omitempty"`
}

type WishlistToggleResponse struct {
	ProductID  int64 `json:"productId"`
	InWishlist bool  `json:"inWishlist"`
}

type Review struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"productId"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	Pending      bool      `json:"pending,omitempty"`
}

type CreateReviewRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

// ReviewBackendRequest is the body the backend expects for a new review.
type ReviewBackendRequest struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Comment      string `json:"comment"`
}
