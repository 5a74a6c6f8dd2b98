package health

import (
	"context"
	"fmt"
	"time"

	"github.com/gradwear/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const Version = "1.0.0"

// Pinger is satisfied by the backend client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler always checks the backend. Postgres and Redis are checked only when
// the draft store or the event bridge use them.
func NewHealthHandler(cfg *config.Config, backend Pinger) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "backend",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if backend == nil {
					return fmt.Errorf("backend client is not initialized")
				}
				if err := backend.Ping(ctx); err != nil {
					return fmt.Errorf("failed to reach backend: %w", err)
				}
				return nil
			},
		},
	}

	if cfg.Drafts.Driver == config.DraftDriverPostgres {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	if cfg.NeedsRedis() {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "gradwear-storefront",
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
