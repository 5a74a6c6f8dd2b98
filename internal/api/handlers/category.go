package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gradwear/storefront/internal/api/middleware"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils"
	"github.com/gradwear/storefront/internal/utils/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	productService  service.ProductService
}

func NewCategoryHandler(categoryService service.CategoryService, productService service.ProductService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, productService: productService}
}

// ListCategories godoc
//	@Summary		List categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		models.CategorySummary	"Categories"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// GetCategory godoc
//	@Summary		Get a category by slug
//	@Tags			Categories
//	@Produce		json
//	@Param			slug	path		string					true	"Category slug or bare id"
//	@Success		200		{object}	models.CategorySummary	"Category"
//	@Failure		404		{object}	response.ErrorResponse	"Category not found"
//	@Router			/categories/{slug} [get]
func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		category, err := h.categoryService.GetCategoryBySlug(r.Context(), r.PathValue("slug"))
		if err != nil {
			logger.Warn("Failed to fetch category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// ListCategoryProducts godoc
//	@Summary		List the products of a category
//	@Description	Takes the same search, sort and paging parameters as /products.
//	@Tags			Categories
//	@Produce		json
//	@Param			slug	path		string						true	"Category slug or bare id"
//	@Success		200		{object}	models.PaginatedResponse	"Products"
//	@Failure		404		{object}	response.ErrorResponse		"Category not found"
//	@Router			/categories/{slug}/products [get]
func (h *CategoryHandler) ListCategoryProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		category, err := h.categoryService.GetCategoryBySlug(r.Context(), r.PathValue("slug"))
		if err != nil {
			logger.Warn("Failed to fetch category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		filter := productFilter(r)
		filter.CategoryID = &category.ID

		products, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list category products", slog.Int64("categoryId", category.ID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// CreateCategory godoc
//	@Summary		Create a category
//	@Tags			Admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Name"
//	@Param			description	formData	string	false	"Description"
//	@Param			mainImage	formData	file	false	"Image"
//	@Success		201			{object}	models.Category			"Created category"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid form"
//	@Security		BearerAuth
//	@Router			/admin/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		req, err := parseCategoryForm(r)
		if err != nil {
			logger.Warn("Invalid category form", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category created successfully", slog.Int64("categoryId", category.ID))
		response.Success(w, http.StatusCreated, category)
	}
}

// UpdateCategory godoc
//	@Summary		Update a category
//	@Tags			Admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id	path		int						true	"Category ID"
//	@Success		200	{object}	models.Category			"Updated category"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid form"
//	@Security		BearerAuth
//	@Router			/admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		req, err := parseCategoryForm(r)
		if err != nil {
			logger.Warn("Invalid category form", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, req)
		if err != nil {
			logger.Error("Failed to update category", slog.Int64("categoryId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}
