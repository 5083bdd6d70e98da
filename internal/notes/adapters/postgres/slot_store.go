// Package postgres provides the PostgreSQL implementation of storage.SlotStore.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"localnotes/pkg/logger"
)

const (
	ErrReadSlot  = "failed to read slot"
	ErrWriteSlot = "failed to write slot"
)

const (
	selectSlotQuery = `SELECT value FROM storage_slots WHERE key = $1`
	upsertSlotQuery = `INSERT INTO storage_slots (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// Querier подмножество pgxpool.Pool, нужное хранилищу (им же удовлетворяет pgxmock).
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// SlotStore хранит слоты в таблице storage_slots.
type SlotStore struct {
	db      Querier
	onClose func()
}

// NewSlotStore creates the store. onClose, if not nil, runs on Close.
func NewSlotStore(db Querier, onClose func()) *SlotStore {
	return &SlotStore{db: db, onClose: onClose}
}

func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "SlotStore.Get"))

	var value string
	err := s.db.QueryRow(ctx, selectSlotQuery, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Debug(ctx, "slot not found", zap.String("key", key))
		return "", false, nil
	}
	if err != nil {
		log.Error(ctx, ErrReadSlot, zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("%s: %w", ErrReadSlot, err)
	}
	return value, true, nil
}

func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	log := logger.Log(ctx).With(zap.String("method", "SlotStore.Set"))

	if _, err := s.db.Exec(ctx, upsertSlotQuery, key, value); err != nil {
		log.Error(ctx, ErrWriteSlot, zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrWriteSlot, err)
	}
	return nil
}

func (s *SlotStore) Close() error {
	if s.onClose != nil {
		s.onClose()
	}
	return nil
}
