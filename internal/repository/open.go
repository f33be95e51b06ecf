package repository

import (
	"context"
	"fmt"

	"linkedlist-backend/internal/config"
	"linkedlist-backend/internal/database"
	"linkedlist-backend/internal/logger"
)

// Open binds the process to one backend. The choice is made once from cfg and
// never revisited; the default user is ensured to exist on either backend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	log := logger.WithContext(ctx)

	var store Store
	if cfg.UseRealBackend() {
		log.Info("Using Postgres backend")
		db, err := database.Initialize(ctx, cfg.DatabaseURL, &database.Options{
			MaxOpenConns:   cfg.DBMaxOpenConns,
			MaxIdleConns:   cfg.DBMaxIdleConns,
			SkipMigrations: !cfg.DBRunMigrations,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		store = NewPostgresStore(db)
	} else {
		log.WithFields(map[string]interface{}{
			"latency": cfg.MockLatency.String(),
			"seeded":  cfg.SeedMockData,
		}).Info("Using in-memory backend")
		if cfg.SeedMockData {
			mem, err := NewDemoMemoryStore(WithLatency(cfg.MockLatency))
			if err != nil {
				return nil, fmt.Errorf("failed to load demo data: %w", err)
			}
			store = mem
		} else {
			store = NewMemoryStore(WithLatency(cfg.MockLatency))
		}
	}

	if _, err := store.FindOrCreateUser(ctx, cfg.DefaultUserID, cfg.DefaultUserEmail); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to ensure default user: %w", err)
	}
	return store, nil
}
