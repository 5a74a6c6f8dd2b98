package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	"github.com/shopspring/decimal"
)

const maxFormMemory = 32 << 20

var imageFields = []string{"mainImage", "detailedImages"}

func parseProductForm(r *http.Request) (*models.UpsertProductRequest, error) {

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, errors.BadRequestError("Expected a multipart form").WithError(err)
	}

	req := &models.UpsertProductRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		ProductType: strings.TrimSpace(r.FormValue("productType")),
	}

	var err error
	if req.Price, err = decimal.NewFromString(r.FormValue("price")); err != nil {
		return nil, errors.AddValidationError("price", "must be a number")
	}

	if v := r.FormValue("originalPrice"); v != "" {
		if req.OriginalPrice, err = decimal.NewFromString(v); err != nil {
			return nil, errors.AddValidationError("originalPrice", "must be a number")
		}
	}

	if req.Stock, err = strconv.Atoi(r.FormValue("stock")); err != nil {
		return nil, errors.AddValidationError("stock", "must be a whole number")
	}

	if v := r.FormValue("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.AddValidationError("categoryId", "must be a number")
		}
		req.CategoryID = &id
	}

	if v := r.FormValue("dynamicOptions"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.DynamicOptions); err != nil {
			return nil, errors.AddValidationError("dynamicOptions", err.Error())
		}
	}

	if req.Files, err = readImages(r.MultipartForm); err != nil {
		return nil, err
	}

	return req, nil
}

func parseCategoryForm(r *http.Request) (*models.UpsertCategoryRequest, error) {

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, errors.BadRequestError("Expected a multipart form").WithError(err)
	}

	files, err := readImages(r.MultipartForm)
	if err != nil {
		return nil, err
	}

	return &models.UpsertCategoryRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Files:       files,
	}, nil
}

// readImages copies uploaded images so they can be forwarded unchanged.
func readImages(form *multipart.Form) ([]models.FilePart, error) {
	var parts []models.FilePart

	for _, field := range imageFields {
		for _, header := range form.File[field] {
			f, err := header.Open()
			if err != nil {
				return nil, errors.BadRequestError(fmt.Sprintf("Unreadable upload %s", header.Filename)).WithError(err)
			}

			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, errors.BadRequestError(fmt.Sprintf("Unreadable upload %s", header.Filename)).WithError(err)
			}

			parts = append(parts, models.FilePart{
				Field:       field,
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	return parts, nil
}
