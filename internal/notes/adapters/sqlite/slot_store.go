// Package sqlite keeps storage slots in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"localnotes/pkg/logger"
)

const (
	LogOpening = "opening SQLite slot store"

	ErrCreateDir    = "failed to create database directory"
	ErrOpenDatabase = "failed to open SQLite database"
	ErrInitSchema   = "failed to initialize SQLite schema"
	ErrReadSlot     = "failed to read slot"
	ErrWriteSlot    = "failed to write slot"
	ErrClose        = "failed to close SQLite database"
)

const (
	schemaQuery = `CREATE TABLE IF NOT EXISTS storage_slots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	selectQuery = `SELECT value FROM storage_slots WHERE key = ?`
	upsertQuery = `INSERT INTO storage_slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
)

// SlotStore SQLite implementation of storage.SlotStore.
type SlotStore struct {
	db *sql.DB
}

// NewSlotStore opens (or creates) the database at path and ensures the schema.
func NewSlotStore(ctx context.Context, path string) (*SlotStore, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogOpening, zap.String("path", path))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateDir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Error(ctx, ErrOpenDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrOpenDatabase, err)
	}
	// SQLite serializes writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaQuery); err != nil {
		_ = db.Close()
		log.Error(ctx, ErrInitSchema, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrInitSchema, err)
	}

	return &SlotStore{db: db}, nil
}

func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", ErrReadSlot, err)
	}
	return value, true, nil
}

func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("%s: %w", ErrWriteSlot, err)
	}
	return nil
}

func (s *SlotStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrClose, err)
	}
	return nil
}
