package config

import (
	"errors"
	"fmt"
)

// Поддерживаемые хранилища слота заметок.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ErrUnknownBackend неизвестное значение NOTES_STORAGE_BACKEND.
var ErrUnknownBackend = errors.New("unknown storage backend")

// StorageConfig выбор и параметры хранилища.
type StorageConfig struct {
	Backend    string `yaml:"backend" env:"NOTES_STORAGE_BACKEND" env-default:"file"`
	Key        string `yaml:"key" env:"NOTES_STORAGE_KEY" env-default:"notes"`
	Dir        string `yaml:"dir" env:"NOTES_STORAGE_DIR" env-default:"data"`
	SQLitePath string `yaml:"sqlite_path" env:"NOTES_SQLITE_PATH" env-default:"data/notes.db"`
}

// Validate проверяет имя хранилища.
func (s *StorageConfig) Validate() error {
	switch s.Backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendRedis, BackendPostgres:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, s.Backend)
	}
}
