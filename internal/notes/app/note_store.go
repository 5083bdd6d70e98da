// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"localnotes/internal/notes/domain/entities"
	"localnotes/internal/notes/ports/storage"
	"localnotes/pkg/logger"
)

// Ошибки уровня бизнес-логики. Слой представления считает их тихими no-op.
var (
	ErrBlankNote        = errors.New("title and text must not be blank")
	ErrNoteNotFound     = errors.New("note not found")
	ErrUnknownCriterion = entities.ErrUnknownSortCriterion
)

const (
	LogNotesLoaded   = "notes loaded"
	LogNoteAdded     = "note added"
	LogNoteEdited    = "note edited"
	LogNoteDeleted   = "note deleted"
	LogNotesSorted   = "notes sorted"
	LogBlankRejected = "blank note rejected"
	LogNoteMissing   = "note not found"
	LogUnknownSort   = "unknown sort criterion"

	ErrPersistNotes = "failed to persist notes"
)

// Option настраивает NoteStore.
type Option func(*NoteStore)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *NoteStore) {
		s.now = now
	}
}

// WithIDGenerator подменяет генератор идентификаторов заметок.
func WithIDGenerator(newID func() string) Option {
	return func(s *NoteStore) {
		s.newID = newID
	}
}

// WithLocale задает язык сравнения заголовков при сортировке по title.
func WithLocale(tag language.Tag) Option {
	return func(s *NoteStore) {
		s.collator = collate.New(tag)
	}
}

// NoteStore хранит упорядоченный список заметок и зеркалирует каждое изменение в storage.
// Все операции сериализованы: каждая выполняется до конца перед началом следующей.
type NoteStore struct {
	mu       sync.Mutex
	storage  storage.NoteStorage
	notes    []entities.Note
	now      func() time.Time
	newID    func() string
	collator *collate.Collator
}

// NewNoteStore создает пустое хранилище. Для чтения сохраненных заметок вызовите Load.
func NewNoteStore(noteStorage storage.NoteStorage, opts ...Option) *NoteStore {
	s := &NoteStore{
		storage:  noteStorage,
		notes:    []entities.Note{},
		now:      time.Now,
		newID:    uuid.NewString,
		collator: collate.New(language.Und),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load заменяет список в памяти сохраненным.
func (s *NoteStore) Load(ctx context.Context) []entities.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = s.storage.Load(ctx)
	if s.notes == nil {
		s.notes = []entities.Note{}
	}

	logger.Log(ctx).Debug(ctx, LogNotesLoaded,
		zap.String("method", "NoteStore.Load"), zap.Int("count", len(s.notes)))
	return slices.Clone(s.notes)
}

// List возвращает копию текущего списка.
func (s *NoteStore) List(_ context.Context) []entities.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.notes)
}

// Get возвращает заметку по ID.
func (s *NoteStore) Get(_ context.Context, id string) (entities.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], nil
	}
	return entities.Note{}, ErrNoteNotFound
}

// Add добавляет новую заметку в начало списка. Пустой заголовок или текст список не меняют.
func (s *NoteStore) Add(ctx context.Context, title, text string) ([]entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.Add"))

	s.mu.Lock()
	defer s.mu.Unlock()

	if entities.IsBlank(title) || entities.IsBlank(text) {
		log.Debug(ctx, LogBlankRejected)
		return slices.Clone(s.notes), ErrBlankNote
	}

	note := entities.NewNote(s.uniqueID(), title, text, s.now())

	next := make([]entities.Note, 0, len(s.notes)+1)
	next = append(next, note)
	next = append(next, s.notes...)

	if err := s.commit(ctx, next); err != nil {
		return slices.Clone(s.notes), err
	}

	log.Info(ctx, LogNoteAdded, zap.String("note_id", note.ID))
	return slices.Clone(s.notes), nil
}

// Edit перезаписывает заголовок и текст заметки и проставляет дату редактирования.
func (s *NoteStore) Edit(ctx context.Context, id, title, text string) ([]entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.Edit"), zap.String("note_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug(ctx, LogNoteMissing)
		return slices.Clone(s.notes), ErrNoteNotFound
	}

	next := slices.Clone(s.notes)
	next[i] = next[i].Edit(title, text, s.now())

	if err := s.commit(ctx, next); err != nil {
		return slices.Clone(s.notes), err
	}

	log.Info(ctx, LogNoteEdited)
	return slices.Clone(s.notes), nil
}

// Delete удаляет заметку по ID. Список сохраняется, даже если такой заметки нет.
func (s *NoteStore) Delete(ctx context.Context, id string) ([]entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.Delete"), zap.String("note_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.notes), func(n entities.Note) bool {
		return n.ID == id
	})
	removed := len(next) != len(s.notes)

	if err := s.commit(ctx, next); err != nil {
		return slices.Clone(s.notes), err
	}

	log.Info(ctx, LogNoteDeleted, zap.Bool("removed", removed))
	return slices.Clone(s.notes), nil
}

// Sort упорядочивает список по criterion и сохраняет новый порядок.
func (s *NoteStore) Sort(ctx context.Context, criterion entities.SortCriterion) ([]entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteStore.Sort"))

	c, err := entities.ParseSortCriterion(string(criterion))
	if err != nil {
		log.Debug(ctx, LogUnknownSort, zap.String("criterion", string(criterion)))
		return s.List(ctx), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.notes)
	sortNotes(next, c, s.collator)

	if err := s.commit(ctx, next); err != nil {
		return slices.Clone(s.notes), err
	}

	log.Info(ctx, LogNotesSorted, zap.String("criterion", string(c)))
	return slices.Clone(s.notes), nil
}

// commit сохраняет next и только после этого делает его текущим списком.
func (s *NoteStore) commit(ctx context.Context, next []entities.Note) error {
	if err := s.storage.Save(ctx, next); err != nil {
		logger.Log(ctx).Error(ctx, ErrPersistNotes, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrPersistNotes, err)
	}
	s.notes = next
	return nil
}

func (s *NoteStore) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n entities.Note) bool {
		return n.ID == id
	})
}

func (s *NoteStore) uniqueID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
