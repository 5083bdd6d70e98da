// Package storage defines the persistence ports of the notes application.
package storage

import (
	"context"

	"localnotes/internal/notes/domain/entities"
)

// DefaultSlotKey ключ слота, в котором хранится список заметок.
const DefaultSlotKey = "notes"

// SlotStore строковое хранилище ключ-значение (аналог localStorage браузера).
type SlotStore interface {
	// Get returns found=false when the key has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// NoteStorage хранит весь список заметок целиком.
type NoteStorage interface {
	// Load never fails: a missing or unreadable list is an empty one.
	Load(ctx context.Context) []entities.Note
	Save(ctx context.Context, notes []entities.Note) error
}
