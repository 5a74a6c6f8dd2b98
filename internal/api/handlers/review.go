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

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: utils.NewValidator()}
}

// ListReviews godoc
//	@Summary	List product reviews
//	@Tags		Reviews
//	@Produce	json
//	@Param		id	path		int						true	"Product ID"
//	@Success	200	{array}		models.Review			"Reviews"
//	@Failure	502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Router		/products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		reviews, err := h.reviewService.ListReviews(r.Context(), productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// CreateReview godoc
//	@Summary		Post a review
//	@Description	Returns the product's reviews including the new one. When the backend rejects it the previous list comes back with the error.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Product ID"
//	@Param			review	body		models.CreateReviewRequest	true	"Review"
//	@Success		201		{array}		models.Review				"Reviews"
//	@Failure		400		{object}	response.ErrorResponse		"Empty comment"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		502		{object}	response.APIResponse		"Backend rejected the review"
//	@Security		BearerAuth
//	@Router			/products/{id}/reviews [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Please sign in to write a review"))
			return
		}

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		reviews, err := h.reviewService.AddReview(r.Context(), productID, claims, &req)
		if err != nil {
			logger.Warn("Failed to add review", slog.Int64("productId", productID), slog.Any("error", err))
			if reviews != nil {
				response.ErrorWithData(w, err, reviews)
				return
			}
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, reviews)
	}
}
