package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/gradwear/storefront/internal/config"
	"github.com/gradwear/storefront/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS option_drafts (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	expires_at TIMESTAMPTZ,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type postgresStore struct {
	db         *sql.DB
	defaultTTL time.Duration
}

func NewPostgresStore(db *sql.DB, defaultTTL time.Duration) Store {
	return &postgresStore{db: db, defaultTTL: defaultTTL}
}

// OpenPostgres opens an instrumented handle, applies pool limits and pings.
func OpenPostgres(cfg *config.Config) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := utils.WithDBTimeout(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the drafts table when it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := db.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("failed to create option_drafts table: %w", err)
	}

	return nil
}

func (p *postgresStore) Get(ctx context.Context, key string, value any) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT value FROM option_drafts WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())`

	var data []byte
	if err := p.db.QueryRowContext(dbCtx, query, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from postgres: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", key, err)
	}

	return true, nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = p.defaultTTL
	}

	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: time.Now().Add(ttl), Valid: true}
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO option_drafts (key, value, expires_at, updated_at) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()`

	if _, err := p.db.ExecContext(dbCtx, query, key, data, expiresAt); err != nil {
		return fmt.Errorf("failed to set key %s in postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Delete(ctx context.Context, key string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := p.db.ExecContext(dbCtx, `DELETE FROM option_drafts WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete key %s from postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Close() error {
	return p.db.Close()
}
