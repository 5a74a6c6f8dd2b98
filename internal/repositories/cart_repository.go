package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gradwear/storefront/internal/models"
)

// CartRepository covers /user/{id}/cart. Writes return no body worth trusting;
// callers read the cart back.
type CartRepository interface {
	GetCart(ctx context.Context, userID int64) ([]models.CartLine, error)
	AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) error
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error
	UpdateOptions(ctx context.Context, userID, productID int64, selection models.OptionSelection, attachments *models.Attachments) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type cartRepository struct {
	client *Client
}

func NewCartRepo(client *Client) CartRepository {
	return &cartRepository{client: client}
}

func cartPath(userID int64) string {
	return fmt.Sprintf("/user/%d/cart", userID)
}

func (r *cartRepository) GetCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	if err := r.client.do(ctx, http.MethodGet, cartPath(userID), nil, &lines); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *cartRepository) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) error {
	return r.client.do(ctx, http.MethodPost, cartPath(userID), req, nil)
}

type updateQuantityBody struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	body := updateQuantityBody{ProductID: productID, Quantity: quantity}

	return r.client.do(ctx, http.MethodPut, cartPath(userID), body, nil)
}

type updateOptionsBody struct {
	ProductID       int64                  `json:"productId"`
	SelectedOptions models.OptionSelection `json:"selectedOptions"`
	Attachments     *models.Attachments    `json:"attachments,omitempty"`
}

func (r *cartRepository) UpdateOptions(ctx context.Context, userID, productID int64, selection models.OptionSelection, attachments *models.Attachments) error {
	body := updateOptionsBody{ProductID: productID, SelectedOptions: selection, Attachments: attachments}

	return r.client.do(ctx, http.MethodPut, cartPath(userID)+"/update-options", body, nil)
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/product/%d", cartPath(userID), productID), nil, nil)
}

func (r *cartRepository) ClearCart(ctx context.Context, userID int64) error {
	return r.client.do(ctx, http.MethodDelete, cartPath(userID), nil, nil)
}
