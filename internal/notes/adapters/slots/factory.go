// Package slots открывает хранилище слотов, выбранное в конфигурации.
package slots

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"localnotes/internal/notes/adapters/cache"
	"localnotes/internal/notes/adapters/file"
	"localnotes/internal/notes/adapters/memory"
	pgslots "localnotes/internal/notes/adapters/postgres"
	"localnotes/internal/notes/adapters/sqlite"
	"localnotes/internal/notes/config"
	"localnotes/internal/notes/ports/storage"
	"localnotes/pkg/db/postgres"
	redisdb "localnotes/pkg/db/redis"
	"localnotes/pkg/logger"
)

const (
	LogOpeningSlots = "opening slot store"

	ErrOpenSlots = "failed to open slot store"
)

// Open создает storage.SlotStore для cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config) (storage.SlotStore, error) {
	log := logger.Log(ctx).With(zap.String("method", "slots.Open"))
	log.Info(ctx, LogOpeningSlots, zap.String("backend", cfg.Storage.Backend))

	store, err := open(ctx, cfg)
	if err != nil {
		log.Error(ctx, ErrOpenSlots, zap.String("backend", cfg.Storage.Backend), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrOpenSlots, err)
	}
	return store, nil
}

func open(ctx context.Context, cfg *config.Config) (storage.SlotStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.NewSlotStore(), nil

	case config.BackendFile:
		return file.NewSlotStore(ctx, cfg.Storage.Dir)

	case config.BackendSQLite:
		return sqlite.NewSlotStore(ctx, cfg.Storage.SQLitePath)

	case config.BackendRedis:
		client, err := redisdb.NewClient(ctx, redisdb.Options{
			Addr:         cfg.Redis.GetAddress(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			return nil, err
		}
		return cache.NewSlotStore(client, cfg.Redis.KeyPrefix), nil

	case config.BackendPostgres:
		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.MigrationsDir); err != nil {
			return nil, err
		}
		db, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			return nil, err
		}
		closeCtx := context.WithoutCancel(ctx)
		if err := db.CheckSlots(ctx); err != nil {
			db.Close(closeCtx)
			return nil, err
		}
		return pgslots.NewSlotStore(db.Pool(), func() { db.Close(closeCtx) }), nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Storage.Backend)
	}
}
