package repository_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gradwear/storefront/internal/models"
	repository "github.com/gradwear/storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productJSON = `{
	"id": 12,
	"name": "وشاح تخرج",
	"description": "وشاح مطرز",
	"price": 100,
	"originalPrice": 150,
	"stock": 4,
	"categoryId": 3,
	"productType": "وشاح وكاب",
	"mainImage": "/uploads/sash.jpg",
	"detailedImages": ["/uploads/sash-1.jpg"],
	"dynamicOptions": [
		{"optionName":"size","optionType":"select","required":true,"options":[{"value":"S"},{"value":"M"},{"value":"L"}]}
	]
}`

func TestProductRepository(t *testing.T) {

	t.Run("GetProductByID", func(t *testing.T) {
		// Arrange
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/products/12", r.URL.Path)
			w.Write([]byte(productJSON))
		})
		repo := repository.NewProductRepo(client)

		// Act
		product, err := repo.GetProductByID(t.Context(), 12)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(12), product.ID)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(100)))
		assert.True(t, product.OriginalPrice.Valid)
		require.Len(t, product.DynamicOptions, 1)
		assert.Equal(t, []string{"S", "M", "L"}, product.DynamicOptions[0].Values())
		require.NotNil(t, product.CategoryID)
		assert.Equal(t, int64(3), *product.CategoryID)
	})

	t.Run("ListProducts", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			w.Write([]byte("[" + productJSON + "]"))
		})

		products, err := repository.NewProductRepo(client).ListProducts(t.Context())

		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("ListProductsByCategory", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/category/3", r.URL.Path)
			w.Write([]byte(`[]`))
		})

		products, err := repository.NewProductRepo(client).ListProductsByCategory(t.Context(), 3)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("DefaultOptions Escapes Product Type", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/default-options/عباية تخرج", r.URL.Path)
			w.Write([]byte(`[{"optionName":"length","optionType":"number","required":true}]`))
		})

		defs, err := repository.NewProductRepo(client).DefaultOptions(t.Context(), "عباية تخرج")

		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, models.OptionTypeNumber, defs[0].Kind.Type())
	})

	t.Run("CreateProduct Sends Multipart Form", func(t *testing.T) {
		// Arrange
		categoryID := int64(3)
		req := &models.UpsertProductRequest{
			Name:          "جاكيت تخرج",
			Description:   "جاكيت",
			Price:         decimal.NewFromInt(250),
			OriginalPrice: decimal.NewFromInt(300),
			Stock:         10,
			ProductType:   "جاكيت",
			CategoryID:    &categoryID,
			DynamicOptions: []models.OptionDefinition{
				{Name: "size", Required: true, Kind: models.SelectOption{Values: []string{"M"}}},
			},
			Files: []models.FilePart{
				{Field: "mainImage", Filename: "main.png", ContentType: "image/png", Data: []byte("png-bytes")},
				{Field: "detailedImages", Filename: "d1.png", ContentType: "image/png", Data: []byte("d1")},
			},
		}

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/products", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))

			assert.Equal(t, "جاكيت تخرج", r.FormValue("name"))
			assert.Equal(t, "250", r.FormValue("price"))
			assert.Equal(t, "300", r.FormValue("originalPrice"))
			assert.Equal(t, "10", r.FormValue("stock"))
			assert.Equal(t, "3", r.FormValue("categoryId"))

			var defs []models.OptionDefinition
			require.NoError(t, json.Unmarshal([]byte(r.FormValue("dynamicOptions")), &defs))
			assert.Equal(t, "size", defs[0].Name)

			main, header, err := r.FormFile("mainImage")
			require.NoError(t, err)
			data, _ := io.ReadAll(main)
			assert.Equal(t, "png-bytes", string(data))
			assert.Equal(t, "main.png", header.Filename)
			assert.Len(t, r.MultipartForm.File["detailedImages"], 1)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":77,"name":"جاكيت تخرج","price":250,"stock":10}`))
		})

		// Act
		product, err := repository.NewProductRepo(client).CreateProduct(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(77), product.ID)
	})

	t.Run("UpdateProduct Uses PUT", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/products/77", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "[]", r.FormValue("dynamicOptions"))
			assert.Empty(t, r.FormValue("categoryId"))
			w.Write([]byte(`{"id":77}`))
		})

		product, err := repository.NewProductRepo(client).UpdateProduct(t.Context(), 77, &models.UpsertProductRequest{Name: "x"})

		require.NoError(t, err)
		assert.Equal(t, int64(77), product.ID)
	})
}
