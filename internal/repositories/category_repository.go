package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gradwear/storefront/internal/models"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.Category, error)
}

type categoryRepository struct {
	client *Client
}

func NewCategoryRepo(client *Client) CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.client.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.Category, error) {
	return r.upsert(ctx, http.MethodPost, "/categories", req)
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.Category, error) {
	return r.upsert(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), req)
}

func (r *categoryRepository) upsert(ctx context.Context, method, path string, req *models.UpsertCategoryRequest) (*models.Category, error) {
	fields := [][2]string{
		{"name", req.Name},
		{"description", req.Description},
	}

	var category models.Category
	if err := r.client.doMultipart(ctx, method, path, fields, req.Files, &category); err != nil {
		return nil, err
	}

	return &category, nil
}
