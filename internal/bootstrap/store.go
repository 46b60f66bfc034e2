package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/HypixelVerify_Go/internal/config"
	"github.com/osse101/HypixelVerify_Go/internal/database"
	"github.com/osse101/HypixelVerify_Go/internal/database/postgres"
	"github.com/osse101/HypixelVerify_Go/internal/database/redisstore"
	"github.com/osse101/HypixelVerify_Go/internal/filestore"
	"github.com/osse101/HypixelVerify_Go/internal/repository"
	"github.com/osse101/HypixelVerify_Go/internal/server"
)

// Store is the opened verification store plus what readiness and shutdown need from it.
type Store struct {
	Verification repository.Verification
	Backend      string
	// Check answers /readyz for the backing service
	Check server.HealthChecker

	close func()
}

// Close releases the backing connection, if any
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore opens the backend named by cfg.StoreBackend and loads its records.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		store *Store
		err   error
	)
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		store, err = openPostgres(ctx, cfg)
	case config.StoreBackendRedis:
		store, err = openRedis(ctx, cfg.RedisURL)
	case config.StoreBackendFile, "":
		store = openFile(cfg.StorePath)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	records, err := store.Verification.LoadAll(ctx)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRecords, err)
	}
	slog.Info(LogMsgStoreOpened, "backend", store.Backend, "records", len(records))
	return store, nil
}

func openFile(path string) *Store {
	return &Store{
		Verification: filestore.New(path),
		Backend:      filestore.BackendName,
		Check:        server.HealthCheckFunc(func(context.Context) error { return nil }),
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Store, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.DatabaseMaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	return &Store{
		Verification: postgres.NewVerificationRepository(pool),
		Backend:      postgres.BackendName,
		Check:        server.HealthCheckFunc(pool.Ping),
		close:        pool.Close,
	}, nil
}

func openRedis(ctx context.Context, url string) (*Store, error) {
	client, err := redisstore.NewClient(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	return &Store{
		Verification: redisstore.New(client),
		Backend:      redisstore.BackendName,
		Check: server.HealthCheckFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}),
		close: func() {
			if err := client.Close(); err != nil {
				slog.Warn("Redis client close failed", "error", err)
			}
		},
	}, nil
}
