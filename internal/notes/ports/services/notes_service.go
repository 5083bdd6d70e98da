// Package services defines service interfaces for the notes service.
package services

import (
	"context"

	"localnotes/internal/notes/domain/entities"
)

// NoteService операции над списком заметок, доступные слою представления.
// Каждая изменяющая операция возвращает актуальный список.
type NoteService interface {
	List(ctx context.Context) []entities.Note
	Get(ctx context.Context, id string) (entities.Note, error)
	Add(ctx context.Context, title, text string) ([]entities.Note, error)
	Edit(ctx context.Context, id, title, text string) ([]entities.Note, error)
	Delete(ctx context.Context, id string) ([]entities.Note, error)
	Sort(ctx context.Context, criterion entities.SortCriterion) ([]entities.Note, error)
}
