package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/utils/response"
	"github.com/stretchr/testify/require"
)

func CreateTestRequestWithContext(method, target string, body io.Reader, userID int64, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	claims := &models.Claims{UserID: userID, Name: "سارة", Email: "test@example.com"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	ctx = context.WithValue(ctx, middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// DecodeResponse unmarshals the envelope and, when data is non-nil, its data field.
func DecodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) response.APIResponse {
	t.Helper()

	var raw struct {
		Success bool                    `json:"success"`
		Data    json.RawMessage         `json:"data"`
		Error   *response.ErrorResponse `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))

	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}

	return response.APIResponse{Success: raw.Success, Data: data, Error: raw.Error}
}
