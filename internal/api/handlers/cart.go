package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils"
	"github.com/gradwear/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// GetCart godoc
//	@Summary		Get the cart
//	@Description	Returns the signed-in user's cart lines with item count and subtotal.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart				"Cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Missing options fall back to the saved draft, then to each list option's first value. Required options must end up filled.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-View-ID	header		string					false	"Calling view"
//	@Param			item		body		models.AddItemRequest	true	"Item"
//	@Success		201			{object}	models.CartLine			"Line as stored by the backend"
//	@Failure		400			{object}	response.ErrorResponse	"Not enough stock or missing required options"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized add to cart attempt")
			response.Error(w, errors.AuthRequiredError("Please sign in to add items to your cart"))
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		line, err := h.cartService.AddToCart(r.Context(), claims.UserID, &req, viewOrigin(r, originProduct))
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusCreated, line)
	}
}

// UpdateItem godoc
//	@Summary		Edit a cart line
//	@Description	Changes quantity (or steps it by one within stock), options or attachments. Incomplete options are saved; checkout enforces them.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		int							true	"Product ID"
//	@Param			X-View-ID	header		string						false	"Calling view"
//	@Param			patch		body		models.UpdateLineRequest	true	"Fields to change"
//	@Success		200			{object}	models.CartLine				"Updated line"
//	@Failure		400			{object}	response.ErrorResponse		"Not enough stock or value not offered"
//	@Failure		404			{object}	response.ErrorResponse		"Line not in cart"
//	@Security		BearerAuth
//	@Router			/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart update attempt")
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateLineRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart update input")
			return
		}

		line, err := h.cartService.UpdateLine(r.Context(), claims.UserID, productID, &req, viewOrigin(r, originCart))
		if err != nil {
			logger.Warn("Failed to update cart line", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, line)
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Produce		json
//	@Param			productId	path		int						true	"Product ID"
//	@Success		200			{object}	models.Cart				"Cart after removal"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveLine(r.Context(), claims.UserID, productID, viewOrigin(r, originCart))
		if err != nil {
			logger.Error("Failed to remove cart line", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Description	Requires confirm=true.
//	@Tags			Cart
//	@Produce		json
//	@Param			confirm	query	bool	true	"Explicit confirmation"
//	@Success		204
//	@Failure		400	{object}	response.ErrorResponse	"Confirmation missing"
//	@Security		BearerAuth
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		confirmed := r.URL.Query().Get("confirm") == "true"

		if err := h.cartService.ClearCart(r.Context(), claims.UserID, confirmed, viewOrigin(r, originCart)); err != nil {
			logger.Warn("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		w.WriteHeader(http.StatusNoContent)
	}
}

// ValidateCart godoc
//	@Summary		Check cart completeness
//	@Description	Reports which lines still miss required options, without blocking anything.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartValidation	"Report"
//	@Security		BearerAuth
//	@Router			/cart/validation [get]
func (h *CartHandler) ValidateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		validation, err := h.cartService.ValidateCart(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, validation)
	}
}

// Checkout godoc
//	@Summary		Checkout gate
//	@Description	Succeeds only when every line has its required options. Otherwise lists, per line, the product name and missing options.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartValidation	"All lines complete"
//	@Failure		400	{object}	response.APIResponse	"Incomplete lines or empty cart"
//	@Security		BearerAuth
//	@Router			/cart/checkout [post]
func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		validation, err := h.cartService.Checkout(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Checkout blocked", slog.Any("error", err))
			if validation != nil {
				response.ErrorWithData(w, err, validation)
				return
			}
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, validation)
	}
}
