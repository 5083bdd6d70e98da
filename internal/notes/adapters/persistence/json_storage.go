// Package persistence mirrors the note list into a single key-value slot as JSON.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"localnotes/internal/notes/domain/entities"
	"localnotes/internal/notes/ports/storage"
	"localnotes/pkg/logger"
)

const (
	LogSlotMissing    = "notes slot is empty, starting with no notes"
	LogSlotReadFailed = "failed to read notes slot, starting with no notes"
	LogSlotCorrupted  = "notes slot holds undecodable data, starting with no notes"
	LogDuplicateID    = "dropping note with duplicate id"
	LogSaved          = "notes slot written"

	ErrEncodeNotes = "failed to encode notes"
	ErrWriteSlot   = "failed to write notes slot"
)

// record формат одной заметки в слоте. Поле editData встречается в старых данных.
type record struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	CreateDate string `json:"createDate"`
	EditDate   string `json:"editDate,omitempty"`
	EditData   string `json:"editData,omitempty"`
}

// JSONStorage implements storage.NoteStorage on top of a storage.SlotStore.
type JSONStorage struct {
	slots storage.SlotStore
	key   string
}

// NewJSONStorage creates the adapter. An empty key means storage.DefaultSlotKey.
func NewJSONStorage(slots storage.SlotStore, key string) *JSONStorage {
	if key == "" {
		key = storage.DefaultSlotKey
	}
	return &JSONStorage{slots: slots, key: key}
}

// Load reads the slot. Absence and decode failures are reported as an empty list.
func (s *JSONStorage) Load(ctx context.Context) []entities.Note {
	log := logger.Log(ctx).With(zap.String("method", "JSONStorage.Load"), zap.String("key", s.key))

	raw, found, err := s.slots.Get(ctx, s.key)
	if err != nil {
		log.Warn(ctx, LogSlotReadFailed, zap.Error(err))
		return []entities.Note{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		log.Debug(ctx, LogSlotMissing)
		return []entities.Note{}
	}

	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warn(ctx, LogSlotCorrupted, zap.Error(err))
		return []entities.Note{}
	}

	seen := make(map[string]struct{}, len(records))
	notes := make([]entities.Note, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			log.Warn(ctx, LogDuplicateID, zap.String("id", r.ID))
			continue
		}
		seen[r.ID] = struct{}{}
		notes = append(notes, r.toNote())
	}
	return notes
}

// Save serializes the whole list and writes it in one call.
func (s *JSONStorage) Save(ctx context.Context, notes []entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "JSONStorage.Save"), zap.String("key", s.key))

	records := make([]record, len(notes))
	for i, n := range notes {
		records[i] = fromNote(n)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrEncodeNotes, err)
	}

	if err := s.slots.Set(ctx, s.key, string(data)); err != nil {
		log.Error(ctx, ErrWriteSlot, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrWriteSlot, err)
	}

	log.Debug(ctx, LogSaved, zap.Int("count", len(notes)))
	return nil
}

func (r record) toNote() entities.Note {
	edit := r.EditDate
	if edit == "" {
		edit = r.EditData
	}
	return entities.Note{
		ID:         r.ID,
		Title:      r.Title,
		Text:       r.Text,
		CreateDate: r.CreateDate,
		EditDate:   edit,
	}
}

func fromNote(n entities.Note) record {
	return record{
		ID:         n.ID,
		Title:      n.Title,
		Text:       n.Text,
		CreateDate: n.CreateDate,
		EditDate:   n.EditDate,
	}
}
