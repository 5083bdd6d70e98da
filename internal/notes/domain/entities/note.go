// Package entities defines the domain entities for the notes application.
package entities

import (
	"strings"
	"time"
)

// TimestampLayout формат дат создания и редактирования: "15/10/2026, 14:03".
const TimestampLayout = "02/01/2006, 15:04"

// Note заметка пользователя. EditDate пустая, пока заметку ни разу не редактировали.
type Note struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	CreateDate string `json:"createDate"`
	EditDate   string `json:"editDate,omitempty"`
}

// NewNote создает заметку с датой создания now.
func NewNote(id, title, text string, now time.Time) Note {
	return Note{
		ID:         id,
		Title:      title,
		Text:       text,
		CreateDate: FormatTimestamp(now),
	}
}

// Edited сообщает, редактировалась ли заметка.
func (n Note) Edited() bool {
	return n.EditDate != ""
}

// Edit возвращает копию с новыми заголовком и текстом и обновленной датой редактирования.
// Дата редактирования не уходит назад относительно предыдущей.
func (n Note) Edit(title, text string, now time.Time) Note {
	if prev, ok := ParseTimestamp(n.EditDate); ok && now.Before(prev) {
		now = prev
	}
	n.Title = title
	n.Text = text
	n.EditDate = FormatTimestamp(now)
	return n
}

// IsBlank сообщает, пуста ли s после удаления пробелов.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FormatTimestamp форматирует t по TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp разбирает строку TimestampLayout в локальной зоне.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
