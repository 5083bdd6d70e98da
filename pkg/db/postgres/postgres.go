// Package postgres opens the pgx pool behind the notes slot table and applies its migrations.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"localnotes/pkg/logger"
)

const (
	ApplicationName = "localnotes"
	SlotsTable      = "storage_slots"
)

const (
	LogConnecting        = "connecting to Postgres database"
	LogConnected         = "successfully connected to Postgres"
	LogClosing           = "closing Postgres connection pool"
	LogMigrationsApplied = "database migrations successfully applied"
	LogSlotsReady        = "notes slot table is ready"
)

const (
	ErrParseConfig  = "failed to parse connection config"
	ErrCreatePool   = "failed to create connection pool"
	ErrPingDatabase = "failed to ping database"
	ErrCheckSlots   = "failed to check notes slot table"
)

// ErrSlotsTableMissing таблица слотов не создана: миграции не применялись.
var ErrSlotsTableMissing = errors.New("notes slot table " + SlotsTable + " does not exist")

// RowQuerier часть пула, нужная для проверки схемы (ей удовлетворяет pgxmock).
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const slotsTableExistsQuery = `SELECT to_regclass($1) IS NOT NULL`

// Database пул соединений с Postgres.
type Database struct {
	pool *pgxpool.Pool
}

// New создает пул и проверяет соединение. Соединения помечаются application_name=localnotes,
// если DSN не задает свое имя.
func New(ctx context.Context, dsn string, minConn, maxConn int) (*Database, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogConnecting)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error(ctx, ErrParseConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrParseConfig, err)
	}

	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName
	}

	if minConn > 0 {
		poolCfg.MinConns = int32(minConn)
	}
	if maxConn > 0 {
		poolCfg.MaxConns = int32(maxConn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error(ctx, ErrCreatePool, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, ErrPingDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPingDatabase, err)
	}

	log.Info(ctx, LogConnected,
		zap.String("application_name", poolCfg.ConnConfig.RuntimeParams["application_name"]),
		zap.Int32("min_conns", poolCfg.MinConns),
		zap.Int32("max_conns", poolCfg.MaxConns))
	return &Database{pool: pool}, nil
}

// Pool возвращает пул соединений.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// Close закрывает пул.
func (db *Database) Close(ctx context.Context) {
	logger.Log(ctx).Info(ctx, LogClosing)
	db.pool.Close()
}

// Ping проверяет доступность базы.
func (db *Database) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// CheckSlots проверяет, что таблица слотов заметок существует.
func (db *Database) CheckSlots(ctx context.Context) error {
	return CheckSlotsTable(ctx, db.pool)
}

// CheckSlotsTable проверяет наличие таблицы SlotsTable через q.
func CheckSlotsTable(ctx context.Context, q RowQuerier) error {
	log := logger.Log(ctx).With(zap.String("table", SlotsTable))

	var exists bool
	if err := q.QueryRow(ctx, slotsTableExistsQuery, SlotsTable).Scan(&exists); err != nil {
		log.Error(ctx, ErrCheckSlots, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCheckSlots, err)
	}
	if !exists {
		log.Error(ctx, ErrCheckSlots, zap.Error(ErrSlotsTableMissing))
		return ErrSlotsTableMissing
	}

	log.Debug(ctx, LogSlotsReady)
	return nil
}
