package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	return body
}

func TestError(t *testing.T) {
	t.Run("App error keeps code, status and details", func(t *testing.T) {
		rr := httptest.NewRecorder()

		response.Error(rr, appErrors.ValidationError("Please choose all required options").WithDetail("المقاس").WithDetails("اللون"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		body := decode(t, rr)
		assert.Equal(t, false, body["success"])
		errBody := body["error"].(map[string]any)
		assert.Equal(t, appErrors.ErrCodeValidation, errBody["code"])
		assert.Equal(t, []any{"المقاس", "اللون"}, errBody["details"])
	})

	t.Run("Plain error is hidden behind a generic message", func(t *testing.T) {
		rr := httptest.NewRecorder()

		response.Error(rr, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
		assert.Contains(t, rr.Body.String(), "An unexpected error occurred")
	})
}

func TestErrorWithData(t *testing.T) {
	rr := httptest.NewRecorder()

	response.ErrorWithData(rr, appErrors.ValidationError("Some items are missing required options"), map[string]any{"valid": false})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, map[string]any{"valid": false}, body["data"])
	assert.NotNil(t, body["error"])
}

func TestSuccess(t *testing.T) {
	rr := httptest.NewRecorder()

	response.Success(rr, http.StatusCreated, map[string]int{"id": 3})

	assert.Equal(t, http.StatusCreated, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "error")
}
