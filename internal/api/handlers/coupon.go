package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/models"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils"
	"github.com/gradwear/storefront/internal/utils/response"
)

// CouponHandler serves the admin coupon screens. Routes are mounted behind RequireAdmin.
type CouponHandler struct {
	couponService service.CouponService
	validator     *validator.Validate
}

func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService, validator: utils.NewValidator()}
}

// ListCoupons godoc
//	@Summary	List coupons
//	@Tags		Coupons
//	@Produce	json
//	@Success	200	{array}		models.Coupon			"Coupons"
//	@Failure	403	{object}	response.ErrorResponse	"Admin access required"
//	@Security	BearerAuth
//	@Router		/admin/coupons [get]
func (h *CouponHandler) ListCoupons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		coupons, err := h.couponService.ListCoupons(r.Context())
		if err != nil {
			logger.Error("Failed to list coupons", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, coupons)
	}
}

// GetCoupon godoc
//	@Summary	Get a coupon
//	@Tags		Coupons
//	@Produce	json
//	@Param		id	path		int						true	"Coupon ID"
//	@Success	200	{object}	models.Coupon			"Coupon"
//	@Failure	404	{object}	response.ErrorResponse	"Coupon not found"
//	@Security	BearerAuth
//	@Router		/admin/coupons/{id} [get]
func (h *CouponHandler) GetCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		coupon, err := h.couponService.GetCoupon(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, coupon)
	}
}

// CreateCoupon godoc
//	@Summary		Create a coupon
//	@Description	Percentage coupons are capped at 100, fixed coupons at 10000 and cannot carry a max discount.
//	@Tags			Coupons
//	@Accept			json
//	@Produce		json
//	@Param			coupon	body		models.Coupon			true	"Coupon"
//	@Success		201		{object}	models.Coupon			"Created"
//	@Failure		400		{object}	response.ErrorResponse	"Validation failed"
//	@Security		BearerAuth
//	@Router			/admin/coupons [post]
func (h *CouponHandler) CreateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.Coupon
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid coupon input")
			return
		}

		coupon, err := h.couponService.CreateCoupon(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create coupon", slog.String("code", req.Code), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Coupon created", slog.Int64("couponId", coupon.ID))
		response.Success(w, http.StatusCreated, coupon)
	}
}

// UpdateCoupon godoc
//	@Summary	Update a coupon
//	@Tags		Coupons
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Coupon ID"
//	@Param		coupon	body		models.Coupon			true	"Coupon"
//	@Success	200		{object}	models.Coupon			"Updated"
//	@Failure	400		{object}	response.ErrorResponse	"Validation failed"
//	@Security	BearerAuth
//	@Router		/admin/coupons/{id} [put]
func (h *CouponHandler) UpdateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.Coupon
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid coupon input")
			return
		}

		coupon, err := h.couponService.UpdateCoupon(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update coupon", slog.Int64("couponId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, coupon)
	}
}

// GenerateCode godoc
//	@Summary	Suggest a coupon code from its name
//	@Tags		Coupons
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.GenerateCouponCodeRequest	true	"Coupon name"
//	@Success	200		{object}	models.GenerateCouponCodeResponse	"Suggested code"
//	@Security	BearerAuth
//	@Router		/admin/coupons/generate-code [post]
func (h *CouponHandler) GenerateCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.GenerateCouponCodeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, models.GenerateCouponCodeResponse{Code: h.couponService.GenerateCode(req.Name)})
	}
}
