package store_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/gradwear/storefront/internal/config"
	"github.com/gradwear/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftKeys(t *testing.T) {
	assert.Equal(t, "productOptions_42", store.DraftKey(42))
	assert.Equal(t, "productOptions_7_42", store.UserDraftKey(7, 42))
}

func TestNew(t *testing.T) {
	client, _ := redismock.NewClientMock()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tests := []struct {
		driver  string
		wantErr bool
	}{
		{config.DraftDriverMemory, false},
		{config.DraftDriverRedis, false},
		{config.DraftDriverPostgres, false},
		{"etcd", true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := &config.Config{Drafts: config.Drafts{Driver: tt.driver}}

			s, err := store.New(cfg, client, db)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}

	t.Run("Failure - Missing Clients", func(t *testing.T) {
		_, err := store.New(&config.Config{Drafts: config.Drafts{Driver: config.DraftDriverRedis}}, nil, nil)
		assert.Error(t, err)

		_, err = store.New(&config.Config{Drafts: config.Drafts{Driver: config.DraftDriverPostgres}}, nil, nil)
		assert.Error(t, err)
	})
}
