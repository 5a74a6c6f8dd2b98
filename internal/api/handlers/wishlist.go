package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils"
	"github.com/gradwear/storefront/internal/utils/response"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// ListWishlist godoc
//	@Summary	List wishlist entries
//	@Tags		Wishlist
//	@Produce	json
//	@Success	200	{array}		models.WishlistEntry	"Entries"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/wishlist [get]
func (h *WishlistHandler) ListWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		entries, err := h.wishlistService.ListWishlist(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, entries)
	}
}

// ToggleWishlist godoc
//	@Summary		Toggle a product in the wishlist
//	@Description	Adds the product when absent, removes it when present.
//	@Tags			Wishlist
//	@Produce		json
//	@Param			productId	path		int								true	"Product ID"
//	@Success		200			{object}	models.WishlistToggleResponse	"New membership"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Security		BearerAuth
//	@Router			/wishlist/{productId}/toggle [post]
func (h *WishlistHandler) ToggleWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Please sign in to save favourites"))
			return
		}

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		result, err := h.wishlistService.Toggle(r.Context(), claims.UserID, productID, viewOrigin(r, originCard))
		if err != nil {
			logger.Warn("Failed to toggle wishlist", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// CheckWishlist godoc
//	@Summary	Is a product in the wishlist
//	@Tags		Wishlist
//	@Produce	json
//	@Param		productId	path		int								true	"Product ID"
//	@Success	200			{object}	models.WishlistToggleResponse	"Membership"
//	@Security	BearerAuth
//	@Router		/wishlist/{productId} [get]
func (h *WishlistHandler) CheckWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

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

		in, err := h.wishlistService.IsInWishlist(r.Context(), claims.UserID, productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.WishlistToggleResponse{ProductID: productID, InWishlist: in})
	}
}
