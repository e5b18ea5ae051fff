package main

import (
	"context"
	"fmt"

	"pet-care-manager/internal/adapters/storage/memory"
	pg "pet-care-manager/internal/adapters/storage/postgres"
	rds "pet-care-manager/internal/adapters/storage/redis"
	"pet-care-manager/internal/adapters/storage/sqlite"
	"pet-care-manager/internal/platform/config"
	"pet-care-manager/internal/recordstore"
)

// openBackend elige el medio según storage.driver.
func openBackend(ctx context.Context, cfg config.StorageConfig) (recordstore.Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewBackend(), nil

	case config.DriverSQLite:
		b, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return b, nil

	case config.DriverPostgres:
		db, err := pg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		b, err := pg.NewBackend(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init postgres backend: %w", err)
		}
		return b, nil

	case config.DriverRedis:
		b := rds.NewBackend(rds.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			Prefix:   cfg.RedisPrefix,
		})
		if err := b.Ping(ctx); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		return b, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
