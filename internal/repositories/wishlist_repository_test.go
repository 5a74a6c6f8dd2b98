package repository_test

import (
	"net/http"
	"testing"

	repository "github.com/gradwear/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepository(t *testing.T) {

	t.Run("ListWishlist", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/user/5/wishlist", r.URL.Path)
			w.Write([]byte(`[{"id":1,"productId":12,"userId":5,"addedAt":"2025-05-01T10:00:00Z","product":{"id":12,"name":"وشاح"}}]`))
		})

		entries, err := repository.NewWishlistRepo(client).ListWishlist(t.Context(), 5)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(12), entries[0].Product.ID)
	})

	t.Run("IsInWishlist", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/user/5/wishlist/check/12", r.URL.Path)
			w.Write([]byte(`{"isInWishlist":true}`))
		})

		in, err := repository.NewWishlistRepo(client).IsInWishlist(t.Context(), 5, 12)

		require.NoError(t, err)
		assert.True(t, in)
	})

	t.Run("AddToWishlist", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, map[string]any{"productId": float64(12)}, decodeBody(t, r))
		})

		require.NoError(t, repository.NewWishlistRepo(client).AddToWishlist(t.Context(), 5, 12))
	})

	t.Run("RemoveFromWishlist", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/user/5/wishlist/product/12", r.URL.Path)
		})

		require.NoError(t, repository.NewWishlistRepo(client).RemoveFromWishlist(t.Context(), 5, 12))
	})
}
