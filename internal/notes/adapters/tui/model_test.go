package tui_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localnotes/internal/notes/adapters/memory"
	"localnotes/internal/notes/adapters/persistence"
	"localnotes/internal/notes/adapters/tui"
	"localnotes/internal/notes/app"
	"localnotes/internal/notes/domain/entities"
	"localnotes/pkg/logger"
)

func testContext() context.Context {
	return logger.NewContext(context.Background(), logger.NewNop())
}

func newStore(t *testing.T, titles ...string) *app.NoteStore {
	t.Helper()
	ctx := testContext()
	store := app.NewNoteStore(persistence.NewJSONStorage(memory.NewSlotStore(), ""))
	store.Load(ctx)
	for i := len(titles) - 1; i >= 0; i-- {
		_, err := store.Add(ctx, titles[i], "text of "+titles[i])
		require.NoError(t, err)
	}
	return store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "alt+enter":
		return tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tui.Model, keys ...string) tui.Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(tui.Model)
	}
	return m
}

func titles(notes []entities.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestAddNote(t *testing.T) {
	store := newStore(t)
	m := tui.NewModel(testContext(), store)

	m = send(m, "a")
	require.True(t, m.Mode().IsAdding())

	m = send(m, "Groceries", "tab", "milk", "enter")

	assert.True(t, m.Mode().IsClosed())
	assert.Equal(t, []string{"Groceries"}, titles(m.Notes()))
	assert.Equal(t, []string{"Groceries"}, titles(store.List(testContext())))

	title, text := m.FormValues()
	assert.Empty(t, title)
	assert.Empty(t, text)
}

func TestAddBlankNoteClosesFormSilently(t *testing.T) {
	store := newStore(t)
	m := tui.NewModel(testContext(), store)

	m = send(m, "a", "Title only", "enter")

	assert.True(t, m.Mode().IsClosed())
	assert.Empty(t, m.Notes())
	assert.Empty(t, m.Status())
}

func TestToggleAddForm(t *testing.T) {
	m := tui.NewModel(testContext(), newStore(t))

	m = send(m, "a")
	assert.True(t, m.Mode().IsAdding())

	m = send(m, "ctrl+a")
	assert.True(t, m.Mode().IsClosed())
}

func TestEditNotePrefillsForm(t *testing.T) {
	store := newStore(t, "first", "second")
	m := tui.NewModel(testContext(), store)

	m = send(m, "down", "e")
	id, ok := m.Mode().EditingID()
	require.True(t, ok)
	assert.Equal(t, m.Notes()[1].ID, id)

	title, text := m.FormValues()
	assert.Equal(t, "second", title)
	assert.Equal(t, "text of second", text)

	m = send(m, "!", "enter")
	assert.True(t, m.Mode().IsClosed())

	note, err := store.Get(testContext(), id)
	require.NoError(t, err)
	assert.Equal(t, "second!", note.Title)
	assert.True(t, note.Edited())
}

func TestEditSavedUnchangedKeepsStoredValues(t *testing.T) {
	store := newStore(t)
	ctx := testContext()
	longTitle := strings.Repeat("t", 300)
	multiline := "line one\nline two\twith tab"
	_, err := store.Add(ctx, longTitle, multiline)
	require.NoError(t, err)

	m := tui.NewModel(ctx, store)
	m = send(m, "e", "enter")
	require.True(t, m.Mode().IsClosed())

	note := store.List(ctx)[0]
	assert.Equal(t, longTitle, note.Title)
	assert.Equal(t, multiline, note.Text)
	assert.Empty(t, m.Status())
}

func TestEditTitleKeepsMultilineText(t *testing.T) {
	store := newStore(t)
	ctx := testContext()
	_, err := store.Add(ctx, "title", "first\n\tindented")
	require.NoError(t, err)

	m := tui.NewModel(ctx, store)
	m = send(m, "e", "!", "enter")

	note := store.List(ctx)[0]
	assert.Equal(t, "title!", note.Title)
	assert.Equal(t, "first\n\tindented", note.Text)
}

func TestAddMultilineText(t *testing.T) {
	store := newStore(t)
	m := tui.NewModel(testContext(), store)

	m = send(m, "a", "Poem", "tab", "line one", "alt+enter", "line two")
	_, text := m.FormValues()
	require.Equal(t, "line one\nline two", text)

	m = send(m, "enter")
	assert.True(t, m.Mode().IsClosed())
	assert.Equal(t, "line one\nline two", store.List(testContext())[0].Text)
}

func TestEditCancelDoesNotWrite(t *testing.T) {
	store := newStore(t, "first")
	m := tui.NewModel(testContext(), store)

	m = send(m, "e", "changed", "esc")
	assert.True(t, m.Mode().IsClosed())

	note := store.List(testContext())[0]
	assert.Equal(t, "first", note.Title)
	assert.False(t, note.Edited())
}

func TestOpeningAddFormClosesEditForm(t *testing.T) {
	m := tui.NewModel(testContext(), newStore(t, "first"))

	m = send(m, "e")
	_, editing := m.Mode().EditingID()
	require.True(t, editing)

	m = send(m, "ctrl+a")
	assert.True(t, m.Mode().IsAdding())
	title, _ := m.FormValues()
	assert.Empty(t, title)
}

func TestDeleteNote(t *testing.T) {
	store := newStore(t, "first", "second")
	m := tui.NewModel(testContext(), store)

	m = send(m, "down", "d")
	assert.Equal(t, []string{"first"}, titles(m.Notes()))
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, []string{"first"}, titles(store.List(testContext())))
}

func TestSortKeys(t *testing.T) {
	store := newStore(t, "b", "c", "a")
	m := tui.NewModel(testContext(), store)

	m = send(m, "1")
	assert.Equal(t, []string{"a", "b", "c"}, titles(m.Notes()))
	assert.Equal(t, []string{"a", "b", "c"}, titles(store.List(testContext())))
}

func TestCursorBounds(t *testing.T) {
	m := tui.NewModel(testContext(), newStore(t, "first", "second"))

	m = send(m, "up")
	assert.Equal(t, 0, m.Cursor())

	m = send(m, "down", "down", "down")
	assert.Equal(t, 1, m.Cursor())
}

func TestQuit(t *testing.T) {
	m := tui.NewModel(testContext(), newStore(t))

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = send(m, "a", "q")
	assert.True(t, m.Mode().IsAdding())
	title, _ := m.FormValues()
	assert.Equal(t, "q", title)
}

type failingStorage struct{}

func (failingStorage) Load(context.Context) []entities.Note { return nil }

func (failingStorage) Save(context.Context, []entities.Note) error {
	return errors.New("disk full")
}

func TestStorageFailureShowsStatus(t *testing.T) {
	store := app.NewNoteStore(failingStorage{})
	m := tui.NewModel(testContext(), store)

	m = send(m, "a", "t", "tab", "x", "enter")

	assert.Equal(t, tui.StatusSaveFailed, m.Status())
	assert.Empty(t, m.Notes())
}

func TestView(t *testing.T) {
	store := newStore(t, "first")
	m := tui.NewModel(testContext(), store)

	view := m.View()
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "created: ")
	assert.NotContains(t, view, "edited: ")

	m = send(m, "e", "!", "enter")
	assert.Contains(t, m.View(), "edited: ")

	m = send(m, "a")
	assert.Contains(t, m.View(), "New note")

	empty := tui.NewModel(testContext(), newStore(t))
	assert.Contains(t, empty.View(), "No notes yet")
}
