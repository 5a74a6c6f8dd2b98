package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/options"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils"
	"github.com/gradwear/storefront/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func productFilter(r *http.Request) *models.ProductFilter {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	filter := &models.ProductFilter{
		Search:   q.Get("q"),
		SortBy:   q.Get("sort"),
		Page:     page,
		PageSize: pageSize,
	}

	if id, err := strconv.ParseInt(q.Get("category"), 10, 64); err == nil && id > 0 {
		filter.CategoryID = &id
	}

	return filter
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Lists the catalogue, optionally filtered by category and a search term, sorted by name or price.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		int						false	"Category ID"
//	@Param			q			query		string					false	"Search in name and description"
//	@Param			sort		query		string					false	"Sort order"	Enums(name, price-low, price-high)
//	@Param			page		query		int						false	"Page number"
//	@Param			pageSize	query		int						false	"Page size, 0 for all, at most 100"
//	@Success		200			{object}	models.PaginatedResponse	"Products"
//	@Failure		400			{object}	response.ErrorResponse	"Unsupported sort"
//	@Failure		502			{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.productService.ListProducts(r.Context(), productFilter(r))
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product by slug
//	@Description	Returns the product with its discount, category and the option selection to show, taken from the saved draft when there is one.
//	@Tags			Products
//	@Produce		json
//	@Param			slug	path		string					true	"Product slug (<id>-<name>) or bare id"
//	@Success		200		{object}	models.ProductView		"Product view"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		502		{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/products/{slug} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		slugValue := r.PathValue("slug")

		view, err := h.productService.GetProductBySlug(r.Context(), slugValue, middleware.UserIDFromContext(r.Context()))
		if err != nil {
			logger.Warn("Failed to fetch product", slog.String("slug", slugValue), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// ProductTypes godoc
//	@Summary	List product types
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}	string	"Product types offered in the admin form"
//	@Router		/product-types [get]
func (h *ProductHandler) ProductTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, options.ProductTypes)
	}
}

// DefaultOptions godoc
//	@Summary		Default options for a product type
//	@Description	Returns the option definitions the admin form pre-fills for a product type.
//	@Tags			Products
//	@Produce		json
//	@Param			type	path		string						true	"Product type"
//	@Success		200		{array}		models.OptionDefinition		"Option definitions"
//	@Failure		400		{object}	response.ErrorResponse		"Missing product type"
//	@Router			/product-types/{type}/default-options [get]
func (h *ProductHandler) DefaultOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		defs, err := h.productService.DefaultOptions(r.Context(), r.PathValue("type"))
		if err != nil {
			logger.Warn("Failed to fetch default options", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, defs)
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Description	Validates the admin product form and forwards it, images included, to the backend.
//	@Tags			Admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string	true	"Name"
//	@Param			price			formData	number	true	"Price"
//	@Param			stock			formData	int		true	"Stock"
//	@Param			productType		formData	string	true	"Product type"
//	@Param			dynamicOptions	formData	string	false	"Option definitions as JSON"
//	@Param			mainImage		formData	file	false	"Main image"
//	@Success		201				{object}	models.Product			"Created product"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid form"
//	@Failure		401				{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403				{object}	response.ErrorResponse	"Admin access required"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		req, err := parseProductForm(r)
		if err != nil {
			logger.Warn("Invalid product form", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product
//	@Description	Same form as create, applied to an existing product.
//	@Tags			Admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	models.Product			"Updated product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid form"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		req, err := parseProductForm(r)
		if err != nil {
			logger.Warn("Invalid product form", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, req)
		if err != nil {
			logger.Error("Failed to update product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, product)
	}
}
