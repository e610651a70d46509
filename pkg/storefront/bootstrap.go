package storefront

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"gitlab.connectwisedev.com/coffee-service/pkg/cache"
	"gitlab.connectwisedev.com/coffee-service/pkg/catalog"
	"gitlab.connectwisedev.com/coffee-service/pkg/config"
	"gitlab.connectwisedev.com/coffee-service/pkg/database"
	"gitlab.connectwisedev.com/coffee-service/pkg/state"
	"gitlab.connectwisedev.com/coffee-service/pkg/store"
)

// NewRepository opens the state backend named by cfg.StateBackend. The
// returned close func releases its connections.
func NewRepository(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (state.Repository, func(), error) {
	switch cfg.StateBackend {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
		if err != nil {
			return nil, nil, err
		}
		return state.NewRedisRepository(redisClient.GetClient()), redisClient.Close, nil
	case "postgres":
		dbClient, err := database.NewPostgresClient(cfg.PostgresDSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		repo := state.NewPostgresRepository(dbClient.GetDB())
		if err := repo.Migrate(ctx); err != nil {
			dbClient.Close()
			return nil, nil, err
		}
		return repo, dbClient.Close, nil
	case "memory", "":
		return state.NewMemoryRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
}

// Bootstrap builds a Service from cfg and restores the saved state.
func Bootstrap(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Service, func(), error) {
	repo, closeRepo, err := NewRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	loader := catalog.NewLoader(cfg.CatalogURL, &http.Client{Timeout: cfg.CatalogTimeout}, logger)
	svc := NewService(store.New(), loader, repo, cfg.StateKey, logger)
	if err := svc.Restore(ctx); err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("failed to restore state: %w", err)
	}
	return svc, closeRepo, nil
}
