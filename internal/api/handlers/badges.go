package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils/response"
)

type BadgeHandler struct {
	badgeService service.BadgeService
}

func NewBadgeHandler(badgeService service.BadgeService) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

// GetBadges godoc
//	@Summary	Navigation badge counts
//	@Tags		Badges
//	@Produce	json
//	@Success	200	{object}	models.Badges			"Cart item count and wishlist size"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/badges [get]
func (h *BadgeHandler) GetBadges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		badges, err := h.badgeService.Badges(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to compute badges", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, badges)
	}
}
