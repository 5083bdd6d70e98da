// Package tui is the terminal interface of the notes application.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"localnotes/internal/notes/app"
	"localnotes/internal/notes/domain/entities"
	"localnotes/internal/notes/ports/services"
	"localnotes/pkg/logger"
)

const (
	StatusSaveFailed = "could not save notes"

	helpList = "a add • e edit • d delete • 1 sort by title • 2 by created • 3 by edited • ↑/↓ select • q quit"
	helpForm = "tab switch field • enter save • alt+enter new line • esc cancel • ctrl+a toggle add form"
)

const (
	fieldTitle = iota
	fieldText
)

// Model bubbletea-модель списка заметок с формами добавления и редактирования.
type Model struct {
	ctx     context.Context
	service services.NoteService
	styles  Styles

	notes  []entities.Note
	cursor int
	mode   Mode
	focus  int
	title  textinput.Model
	text   textarea.Model
	status string
	width  int

	// stored исходные значения редактируемой заметки, shown их вид после виджетов формы.
	stored formValues
	shown  formValues
}

type formValues struct {
	title, text string
}

// NewModel создает модель по текущему содержимому service.
func NewModel(ctx context.Context, service services.NoteService) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 0

	text := textarea.New()
	text.Placeholder = "Text"
	text.CharLimit = 0
	text.MaxHeight = 0
	text.ShowLineNumbers = false
	text.SetHeight(3)
	text.KeyMap.InsertNewline.SetKeys("alt+enter")

	return Model{
		ctx:     ctx,
		service: service,
		styles:  DefaultStyles(),
		notes:   service.List(ctx),
		mode:    Closed(),
		title:   title,
		text:    text,
	}
}

// Notes возвращает список в том виде, в каком он показан.
func (m Model) Notes() []entities.Note { return m.notes }

// Mode возвращает состояние формы.
func (m Model) Mode() Mode { return m.mode }

// Cursor возвращает индекс выбранной заметки.
func (m Model) Cursor() int { return m.cursor }

// Status возвращает последнюю строку ошибки, показанную пользователю.
func (m Model) Status() string { return m.status }

// FormValues возвращает заголовок и текст, введенные в форму.
func (m Model) FormValues() (string, string) { return m.title.Value(), m.text.Value() }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 8; w > 0 {
			m.title.Width = w
			m.text.SetWidth(w)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+a" {
			return m.toggleAdd()
		}
		if m.mode.IsClosed() {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
	case "a":
		return m.toggleAdd()
	case "e":
		return m.openEdit()
	case "d":
		if note, ok := m.selected(); ok {
			ctx := m.action("delete")
			notes, err := m.service.Delete(ctx, note.ID)
			m.apply(ctx, notes, err)
		}
	case "1":
		m.sort(entities.SortByTitle)
	case "2":
		m.sort(entities.SortByCreateDate)
	case "3":
		m.sort(entities.SortByEditDate)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "tab", "shift+tab":
		return m, m.setFocus(1 - m.focus)
	case "enter":
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == fieldTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.text, cmd = m.text.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleAdd() (tea.Model, tea.Cmd) {
	m.mode = m.mode.ToggleAdd()
	m.title.Reset()
	m.text.Reset()
	m.stored, m.shown = formValues{}, formValues{}
	if m.mode.IsClosed() {
		m.blur()
		return m, nil
	}
	return m, m.setFocus(fieldTitle)
}

func (m Model) openEdit() (tea.Model, tea.Cmd) {
	note, ok := m.selected()
	if !ok {
		return m, nil
	}
	current, err := m.service.Get(m.ctx, note.ID)
	if err != nil {
		return m, nil
	}

	m.mode = Editing(current.ID)
	m.title.SetValue(current.Title)
	m.text.SetValue(current.Text)
	m.stored = formValues{title: current.Title, text: current.Text}
	m.shown = formValues{title: m.title.Value(), text: m.text.Value()}
	return m, m.setFocus(fieldTitle)
}

// submit сохраняет открытую форму. Форма закрывается в любом случае.
func (m *Model) submit() {
	title, text := m.title.Value(), m.text.Value()

	switch {
	case m.mode.IsAdding():
		ctx := m.action("add")
		notes, err := m.service.Add(ctx, title, text)
		m.apply(ctx, notes, err)
		if err == nil {
			m.cursor = 0
		}
	default:
		id, ok := m.mode.EditingID()
		if !ok {
			return
		}
		if title == m.shown.title {
			title = m.stored.title
		}
		if text == m.shown.text {
			text = m.stored.text
		}
		ctx := m.action("edit")
		notes, err := m.service.Edit(ctx, id, title, text)
		m.apply(ctx, notes, err)
	}
	m.closeForm()
}

func (m *Model) sort(criterion entities.SortCriterion) {
	ctx := m.action("sort")
	notes, err := m.service.Sort(ctx, criterion)
	m.apply(ctx, notes, err)
}

// apply показывает возвращенный список. Пустой ввод и исчезнувшие заметки игнорируются молча.
func (m *Model) apply(ctx context.Context, notes []entities.Note, err error) {
	m.status = ""
	if notes != nil {
		m.notes = notes
	}
	if m.cursor >= len(m.notes) {
		m.cursor = max(len(m.notes)-1, 0)
	}

	if err == nil || errors.Is(err, app.ErrBlankNote) || errors.Is(err, app.ErrNoteNotFound) {
		return
	}
	logger.Log(ctx).Warn(ctx, StatusSaveFailed, zap.Error(err))
	m.status = StatusSaveFailed
}

func (m *Model) action(name string) context.Context {
	ctx := logger.NewActionContext(m.ctx, "")
	logger.Log(ctx).Debug(ctx, "tui action", zap.String("action", name))
	return ctx
}

func (m *Model) closeForm() {
	m.mode = Closed()
	m.title.Reset()
	m.text.Reset()
	m.stored, m.shown = formValues{}, formValues{}
	m.blur()
}

func (m *Model) blur() {
	m.title.Blur()
	m.text.Blur()
}

func (m *Model) setFocus(field int) tea.Cmd {
	m.focus = field
	if field == fieldTitle {
		m.text.Blur()
		return m.title.Focus()
	}
	m.title.Blur()
	return m.text.Focus()
}

func (m Model) selected() (entities.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return entities.Note{}, false
	}
	return m.notes[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Notes (%d)", len(m.notes))))
	b.WriteString("\n")

	if len(m.notes) == 0 {
		b.WriteString(m.styles.Empty.Render("No notes yet. Press a to add one."))
		b.WriteString("\n")
	}

	for i, n := range m.notes {
		marker, titleStyle := "  ", m.styles.Title
		if i == m.cursor && m.mode.IsClosed() {
			marker, titleStyle = "> ", m.styles.Selected
		}
		if id, ok := m.mode.EditingID(); ok && id == n.ID {
			marker, titleStyle = "✎ ", m.styles.Selected
		}

		b.WriteString(marker + titleStyle.Render(n.Title) + "\n")
		b.WriteString(m.styles.Text.Render(n.Text) + "\n")
		meta := "created: " + n.CreateDate
		if n.Edited() {
			meta += "  edited: " + n.EditDate
		}
		b.WriteString(m.styles.Meta.Render(meta) + "\n")
	}

	if !m.mode.IsClosed() {
		heading := "New note"
		if m.mode.Kind == ModeEditing {
			heading = "Edit note"
		}
		form := strings.Join([]string{
			m.styles.Title.Render(heading),
			m.styles.Label.Render("Title") + " " + m.title.View(),
			m.styles.Label.Render("Text"),
			m.text.View(),
		}, "\n")
		b.WriteString(m.styles.Form.Render(form) + "\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status) + "\n")
	}

	help := helpList
	if !m.mode.IsClosed() {
		help = helpForm
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

// Run запускает интерактивную программу и блокируется до выхода пользователя или отмены ctx.
func Run(ctx context.Context, service services.NoteService) error {
	p := tea.NewProgram(NewModel(ctx, service), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
