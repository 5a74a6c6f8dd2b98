package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	DefaultOptions(ctx context.Context, productType string) ([]models.OptionDefinition, error)
	CreateProduct(ctx context.Context, req *models.UpsertProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpsertProductRequest) (*models.Product, error)
}

type productRepository struct {
	client *Client
}

func NewProductRepo(client *Client) ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.client.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	var products []models.Product
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/products/category/%d", categoryID), nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) DefaultOptions(ctx context.Context, productType string) ([]models.OptionDefinition, error) {
	var defs []models.OptionDefinition
	path := "/products/default-options/" + url.PathEscape(productType)
	if err := r.client.do(ctx, http.MethodGet, path, nil, &defs); err != nil {
		return nil, err
	}

	return defs, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, req *models.UpsertProductRequest) (*models.Product, error) {
	return r.upsert(ctx, http.MethodPost, "/products", req)
}

func (r *productRepository) UpdateProduct(ctx context.Context, id int64, req *models.UpsertProductRequest) (*models.Product, error) {
	return r.upsert(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), req)
}

func (r *productRepository) upsert(ctx context.Context, method, path string, req *models.UpsertProductRequest) (*models.Product, error) {

	fields, err := productFormFields(req)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := r.client.doMultipart(ctx, method, path, fields, req.Files, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// productFormFields mirrors the admin form: dynamicOptions travels as JSON text.
func productFormFields(req *models.UpsertProductRequest) ([][2]string, error) {

	dynamicOptions := req.DynamicOptions
	if dynamicOptions == nil {
		dynamicOptions = []models.OptionDefinition{}
	}

	optionsJSON, err := json.Marshal(dynamicOptions)
	if err != nil {
		return nil, errors.ValidationError("Invalid dynamic options").WithError(err)
	}

	fields := [][2]string{
		{"name", req.Name},
		{"description", req.Description},
		{"price", req.Price.String()},
		{"originalPrice", req.OriginalPrice.String()},
		{"stock", strconv.Itoa(req.Stock)},
		{"productType", req.ProductType},
		{"dynamicOptions", string(optionsJSON)},
		{"specifications", "[]"},
	}

	if req.CategoryID != nil {
		fields = append(fields, [2]string{"categoryId", strconv.FormatInt(*req.CategoryID, 10)})
	}

	return fields, nil
}
