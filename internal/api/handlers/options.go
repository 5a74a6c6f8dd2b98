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

type OptionsHandler struct {
	optionsService service.OptionsService
	validator      *validator.Validate
}

func NewOptionsHandler(optionsService service.OptionsService) *OptionsHandler {
	return &OptionsHandler{optionsService: optionsService, validator: utils.NewValidator()}
}

// UpdateSelection godoc
//	@Summary		Change one option of a product draft
//	@Description	Saves the full selection as the product's draft and notifies other open views. X-View-ID names the calling view.
//	@Tags			Options
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int								true	"Product ID"
//	@Param			X-View-ID	header		string							false	"Calling view"
//	@Param			selection	body		models.UpdateSelectionRequest	true	"Option and value"
//	@Success		200			{object}	models.OptionSelection			"Updated selection"
//	@Failure		400			{object}	response.ErrorResponse			"Unknown option or value not offered"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id}/selection [put]
func (h *OptionsHandler) UpdateSelection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized selection update")
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateSelectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid selection input")
			return
		}

		selection, err := h.optionsService.UpdateSelection(r.Context(), claims.UserID, productID, req.Option, req.Value, viewOrigin(r, originProduct))
		if err != nil {
			logger.Warn("Failed to update selection", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, selection)
	}
}
