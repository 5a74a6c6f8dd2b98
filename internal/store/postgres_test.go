package store_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	s := store.NewPostgresStore(db, time.Hour)
	ctx := t.Context()
	key := store.DraftKey(5)
	draft := models.OptionSelection{"capColor": "black"}
	jsonData, err := json.Marshal(draft)
	require.NoError(t, err)

	selectSQL := regexp.QuoteMeta(`SELECT value FROM option_drafts WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())`)

	t.Run("Get", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(selectSQL).WithArgs(key).
				WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(jsonData))

			// Act
			var got models.OptionSelection
			found, err := s.Get(ctx, key, &got)

			// Assert
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, draft, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			mock.ExpectQuery(selectSQL).WithArgs(key).WillReturnError(sql.ErrNoRows)

			var got models.OptionSelection
			found, err := s.Get(ctx, key, &got)

			require.NoError(t, err)
			assert.False(t, found)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			dbErr := errors.New("connection reset")
			mock.ExpectQuery(selectSQL).WithArgs(key).WillReturnError(dbErr)

			var got models.OptionSelection
			found, err := s.Get(ctx, key, &got)

			require.Error(t, err)
			assert.False(t, found)
			assert.ErrorIs(t, err, dbErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Set", func(t *testing.T) {
		upsertSQL := `INSERT INTO option_drafts \(key, value, expires_at, updated_at\) VALUES \(\$1, \$2, \$3, NOW\(\)\)`

		t.Run("Success", func(t *testing.T) {
			mock.ExpectExec(upsertSQL).WithArgs(key, jsonData, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := s.Set(ctx, key, draft, 0)

			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			dbErr := errors.New("insert failed")
			mock.ExpectExec(upsertSQL).WithArgs(key, jsonData, sqlmock.AnyArg()).WillReturnError(dbErr)

			err := s.Set(ctx, key, draft, 0)

			assert.ErrorIs(t, err, dbErr)
			assert.Contains(t, err.Error(), "failed to set key "+key+" in postgres")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM option_drafts WHERE key = $1`)).WithArgs(key).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Delete(ctx, key))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Migrate", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS option_drafts`).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, store.Migrate(ctx, db))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
