package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gradwear/storefront/internal/api/handlers"
	appErrors "github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/services/mocks"
	"github.com/gradwear/storefront/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleLine() *models.CartLine {
	return &models.CartLine{
		ID:              10,
		ProductID:       1,
		Quantity:        2,
		SelectedOptions: models.OptionSelection{"size": "M"},
		Product:         models.Product{ID: 1, Name: "عباية تخرج", Price: decimal.NewFromInt(100), Stock: 5},
	}
}

func TestGetCart(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Cart returned", func(t *testing.T) {
		// Arrange
		cart := &models.Cart{UserID: 7, Items: []models.CartLine{*sampleLine()}, Summary: models.CartSummary{ItemCount: 2, Subtotal: decimal.NewFromInt(200)}}
		mockCartService.On("GetCart", mock.Anything, int64(7)).Return(cart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, 7, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Cart
		resp := testutils.DecodeResponse(t, rr, &got)
		assert.True(t, resp.Success)
		assert.Equal(t, 2, got.Summary.ItemCount)
		assert.True(t, got.Summary.Subtotal.Equal(decimal.NewFromInt(200)))
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := testutils.DecodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeAuthRequired, resp.Error.Code)
	})

	t.Run("Failure - Backend unavailable", func(t *testing.T) {
		mockCartService.On("GetCart", mock.Anything, int64(7)).Return(nil, appErrors.NetworkError("Backend unavailable")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestAddItem(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Item added with view origin", func(t *testing.T) {
		// Arrange
		body := `{"productId":1,"quantity":2,"selectedOptions":{"size":"M"}}`
		mockCartService.On("AddToCart", mock.Anything, int64(7), mock.MatchedBy(func(r *models.AddItemRequest) bool {
			return r.ProductID == 1 && r.Quantity == 2 && r.SelectedOptions["size"] == "M"
		}), "view-42").Return(sampleLine(), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body), 7, nil)
		req.Header.Set("X-View-ID", "view-42")
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var line models.CartLine
		testutils.DecodeResponse(t, rr, &line)
		assert.Equal(t, int64(10), line.ID)
		assert.Equal(t, "M", line.SelectedOptions["size"])
		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - Origin defaults to product view", func(t *testing.T) {
		mockCartService.On("AddToCart", mock.Anything, int64(7), mock.Anything, "product").Return(sampleLine(), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":1}`), 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Quantity below one", func(t *testing.T) {
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":0}`), 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := testutils.DecodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("Failure - Missing required options", func(t *testing.T) {
		svcErr := appErrors.ValidationError("Please choose all required options").WithDetails("المقاس")
		mockCartService.On("AddToCart", mock.Anything, int64(7), mock.Anything, "product").Return(nil, svcErr).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":1}`), 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := testutils.DecodeResponse(t, rr, nil)
		assert.Equal(t, []string{"المقاس"}, resp.Error.Details)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":1}`), nil)
		rr := httptest.NewRecorder()

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateItem(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Quantity changed", func(t *testing.T) {
		// Arrange
		updated := sampleLine()
		updated.Quantity = 3
		mockCartService.On("UpdateLine", mock.Anything, int64(7), int64(1), mock.MatchedBy(func(r *models.UpdateLineRequest) bool {
			return r.Quantity != nil && *r.Quantity == 3 && r.SelectedOptions == nil
		}), "cart").Return(updated, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/cart/items/1", strings.NewReader(`{"quantity":3}`), 7, map[string]string{"productId": "1"})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var line models.CartLine
		testutils.DecodeResponse(t, rr, &line)
		assert.Equal(t, 3, line.Quantity)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Bad product id", func(t *testing.T) {
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/cart/items/abc", strings.NewReader(`{"quantity":3}`), 7, map[string]string{"productId": "abc"})
		rr := httptest.NewRecorder()

		cartHandler.UpdateItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Line not in cart", func(t *testing.T) {
		mockCartService.On("UpdateLine", mock.Anything, int64(7), int64(99), mock.Anything, "cart").Return(nil, appErrors.NotFoundError("Cart item not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/cart/items/99", strings.NewReader(`{"quantity":1}`), 7, map[string]string{"productId": "99"})
		rr := httptest.NewRecorder()

		cartHandler.UpdateItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestRemoveAndClear(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - Line removed", func(t *testing.T) {
		mockCartService.On("RemoveLine", mock.Anything, int64(7), int64(1), "cart").Return(&models.Cart{UserID: 7, Items: []models.CartLine{}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/items/1", nil, 7, map[string]string{"productId": "1"})
		rr := httptest.NewRecorder()

		cartHandler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var cart models.Cart
		testutils.DecodeResponse(t, rr, &cart)
		assert.Empty(t, cart.Items)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - Cleared with confirmation", func(t *testing.T) {
		mockCartService.On("ClearCart", mock.Anything, int64(7), true, "cart").Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart?confirm=true", nil, 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.ClearCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Clear without confirmation", func(t *testing.T) {
		mockCartService.On("ClearCart", mock.Anything, int64(7), false, "cart").Return(appErrors.ValidationError("Confirm clearing the cart")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.ClearCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestCheckout(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	t.Run("Success - All lines complete", func(t *testing.T) {
		mockCartService.On("Checkout", mock.Anything, int64(7)).Return(&models.CartValidation{Valid: true, InvalidLines: []models.InvalidLine{}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/checkout", nil, 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var validation models.CartValidation
		testutils.DecodeResponse(t, rr, &validation)
		assert.True(t, validation.Valid)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Incomplete lines carry the report", func(t *testing.T) {
		// Arrange
		report := &models.CartValidation{
			Valid:        false,
			InvalidLines: []models.InvalidLine{{ProductID: 1, ProductName: "عباية تخرج", Missing: []string{"size"}}},
		}
		svcErr := appErrors.ValidationError("Some items are missing required options").WithDetails("عباية تخرج: size")
		mockCartService.On("Checkout", mock.Anything, int64(7)).Return(report, svcErr).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/checkout", nil, 7, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.Checkout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var validation models.CartValidation
		resp := testutils.DecodeResponse(t, rr, &validation)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, []string{"عباية تخرج: size"}, resp.Error.Details)
		require.Len(t, validation.InvalidLines, 1)
		assert.Equal(t, []string{"size"}, validation.InvalidLines[0].Missing)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Empty cart", func(t *testing.T) {
		mockCartService.On("Checkout", mock.Anything, int64(7)).Return(nil, appErrors.ValidationError("Cart is empty")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/checkout", nil, 7, nil)
		rr := httptest.NewRecorder()

		cartHandler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "data")
		mockCartService.AssertExpectations(t)
	})
}

func TestValidateCart(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	mockCartService.On("ValidateCart", mock.Anything, int64(7)).Return(&models.CartValidation{Valid: false, InvalidLines: []models.InvalidLine{{ProductID: 1}}}, nil).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart/validation", bytes.NewReader(nil), 7, nil)
	rr := httptest.NewRecorder()

	cartHandler.ValidateCart().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var validation models.CartValidation
	testutils.DecodeResponse(t, rr, &validation)
	assert.False(t, validation.Valid)
	mockCartService.AssertExpectations(t)
}
