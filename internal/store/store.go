// Package store keeps option drafts outside the lifetime of any single view.
// The medium is swappable: memory for tests and single instances, Redis or Postgres when shared.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/gradwear/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type Store interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const DraftKeyPrefix = "productOptions_"

// DraftKey is the device-wide draft key for a product.
func DraftKey(productID int64) string {
	return DraftKeyPrefix + strconv.FormatInt(productID, 10)
}

// UserDraftKey scopes a product draft to one signed-in user.
func UserDraftKey(userID, productID int64) string {
	return DraftKeyPrefix + strconv.FormatInt(userID, 10) + "_" + strconv.FormatInt(productID, 10)
}

// New picks the implementation named by cfg.Drafts.Driver. The shared clients may be nil
// when the driver does not need them.
func New(cfg *config.Config, rdb *redis.Client, db *sql.DB) (Store, error) {
	switch cfg.Drafts.Driver {
	case config.DraftDriverMemory:
		return NewMemoryStore(cfg.Drafts.TTL), nil
	case config.DraftDriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis draft store needs a redis client")
		}
		return NewRedisStore(rdb, cfg.Drafts.TTL), nil
	case config.DraftDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres draft store needs a database handle")
		}
		return NewPostgresStore(db, cfg.Drafts.TTL), nil
	default:
		return nil, fmt.Errorf("unknown draft driver %q", cfg.Drafts.Driver)
	}
}
