package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/options"
	repository "github.com/gradwear/storefront/internal/repositories"
	"github.com/gradwear/storefront/internal/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type ProductService interface {
	ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedResponse, error)
	GetProductBySlug(ctx context.Context, slugValue string, userID int64) (*models.ProductView, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	DefaultOptions(ctx context.Context, productType string) ([]models.OptionDefinition, error)
	CreateProduct(ctx context.Context, req *models.UpsertProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpsertProductRequest) (*models.Product, error)
}

// MaxPageSize caps the pageSize a listing accepts.
const MaxPageSize = 100

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	options      OptionsService
	validator    *validator.Validate
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, optionsService OptionsService, validate *validator.Validate) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, options: optionsService, validator: validate}
}

func (s *productService) ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedResponse, error) {

	var (
		products []models.Product
		err      error
	)

	if filter.CategoryID != nil {
		products, err = s.repo.ListProductsByCategory(ctx, *filter.CategoryID)
	} else {
		products, err = s.repo.ListProducts(ctx)
	}
	if err != nil {
		return nil, backendError(err, "Failed to fetch products")
	}

	products = searchProducts(products, filter.Search)

	if err := sortProducts(products, filter.SortBy); err != nil {
		return nil, err
	}

	total := len(products)
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}

	// pageSize <= 0 returns everything on one page
	if pageSize > 0 {
		pageSize = min(pageSize, MaxPageSize)

		// compare page counts first so (page-1)*pageSize cannot overflow
		start := total
		if page-1 < (total+pageSize-1)/pageSize {
			start = (page - 1) * pageSize
		}
		end := min(start+pageSize, total)
		products = products[start:end]
	} else {
		pageSize = total
	}

	summaries := make([]models.ProductSummary, 0, len(products))
	for i := range products {
		p := &products[i]
		summaries = append(summaries, models.ProductSummary{
			Product:         p,
			Slug:            slug.Encode(p.ID, p.Name),
			DiscountPercent: p.DiscountPercent(),
		})
	}

	return &models.PaginatedResponse{
		Data:     summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func searchProducts(products []models.Product, query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) || strings.Contains(strings.ToLower(p.Description), query) {
			matched = append(matched, p)
		}
	}

	return matched
}

func sortProducts(products []models.Product, sortBy string) error {
	switch sortBy {
	case "", models.SortByName:
		// a Collator keeps internal buffers, so one per call
		c := collate.New(language.Arabic)
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	case models.SortByPriceLow:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case models.SortByPriceHigh:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	default:
		return errors.AddValidationError("sort", fmt.Sprintf("unsupported value %q", sortBy))
	}

	return nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slugValue string, userID int64) (*models.ProductView, error) {

	id, err := slug.Decode(slugValue)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.SizeGuideImage == "" {
		if image, ok := options.SizeGuideImage(product.ProductType); ok {
			product.SizeGuideImage = image
		}
	}

	view := &models.ProductView{
		Product:         product,
		Slug:            slug.Encode(product.ID, product.Name),
		DiscountPercent: product.DiscountPercent(),
		Selection:       s.options.Selection(ctx, userID, product),
		Labels:          options.Labels(product.DynamicOptions),
	}

	// the page still renders without its breadcrumb
	if product.CategoryID != nil {
		category, err := s.categoryRepo.GetCategoryByID(ctx, *product.CategoryID)
		if err != nil {
			slog.Warn("Failed to fetch product category",
				slog.Int64("productId", product.ID),
				slog.Int64("categoryId", *product.CategoryID),
				slog.String("error", err.Error()))
		} else {
			view.Category = category
		}
	}

	return view, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, backendError(err, "Failed to fetch product")
	}

	return product, nil
}

func (s *productService) DefaultOptions(ctx context.Context, productType string) ([]models.OptionDefinition, error) {

	productType = strings.TrimSpace(productType)
	if productType == "" {
		return nil, errors.AddValidationError("productType", "is required")
	}

	defs, err := s.repo.DefaultOptions(ctx, productType)
	if err != nil {
		return nil, backendError(err, "Failed to fetch default options")
	}

	if defs == nil {
		defs = []models.OptionDefinition{}
	}

	return defs, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.UpsertProductRequest) (*models.Product, error) {

	if err := s.validateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.repo.CreateProduct(ctx, req)
	if err != nil {
		return nil, backendError(err, "Failed to create product")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpsertProductRequest) (*models.Product, error) {

	if err := s.validateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.repo.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, backendError(err, "Failed to update product")
	}

	return product, nil
}

func (s *productService) validateProduct(req *models.UpsertProductRequest) error {

	if err := s.validator.Struct(req); err != nil {
		return errors.ValidationError("Invalid product data").WithDetail(err.Error()).WithError(err)
	}

	if !req.Price.GreaterThan(decimal.Zero) {
		return errors.AddValidationError("price", "must be greater than zero")
	}

	if req.OriginalPrice.IsNegative() {
		return errors.AddValidationError("originalPrice", "must not be negative")
	}

	seen := make(map[string]bool, len(req.DynamicOptions))
	for _, def := range req.DynamicOptions {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return errors.AddValidationError("dynamicOptions", "every option needs a name")
		}
		if seen[name] {
			return errors.AddValidationError("dynamicOptions", fmt.Sprintf("option %q is defined twice", name))
		}
		seen[name] = true

		if !def.Usable() {
			return errors.AddValidationError("dynamicOptions", fmt.Sprintf("option %q must list at least one value", name))
		}
	}

	return nil
}
