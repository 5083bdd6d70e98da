// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "localnotes/internal/notes/domain/entities"

// NoteRequest тело запроса на создание или изменение заметки.
type NoteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Note представляет заметку.
type Note struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	CreateDate string `json:"createDate"`
	EditDate   string `json:"editDate,omitempty"`
}

// NoteResponse содержит одну заметку.
type NoteResponse struct {
	Note Note `json:"note"`
}

// ListNotesResponse содержит весь список в текущем порядке.
type ListNotesResponse struct {
	Notes []Note `json:"notes"`
}

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromEntity converts a domain note.
func FromEntity(n entities.Note) Note {
	return Note{
		ID:         n.ID,
		Title:      n.Title,
		Text:       n.Text,
		CreateDate: n.CreateDate,
		EditDate:   n.EditDate,
	}
}

// FromEntities converts a list, never returning nil.
func FromEntities(notes []entities.Note) ListNotesResponse {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = FromEntity(n)
	}
	return ListNotesResponse{Notes: out}
}
