package tui

// ModeKind какая форма открыта, если открыта.
type ModeKind int

const (
	ModeClosed ModeKind = iota
	ModeAdding
	ModeEditing
)

// Mode состояние формы. Открыть обе формы одновременно невозможно.
type Mode struct {
	Kind   ModeKind
	NoteID string
}

// Closed ни одна форма не открыта.
func Closed() Mode { return Mode{Kind: ModeClosed} }

// Adding открыта форма добавления.
func Adding() Mode { return Mode{Kind: ModeAdding} }

// Editing открыта форма редактирования noteID.
func Editing(noteID string) Mode { return Mode{Kind: ModeEditing, NoteID: noteID} }

// IsClosed сообщает, что ни одна форма не открыта.
func (m Mode) IsClosed() bool { return m.Kind == ModeClosed }

// IsAdding сообщает, что открыта форма добавления.
func (m Mode) IsAdding() bool { return m.Kind == ModeAdding }

// EditingID возвращает ID редактируемой заметки.
func (m Mode) EditingID() (string, bool) {
	if m.Kind != ModeEditing {
		return "", false
	}
	return m.NoteID, true
}

// ToggleAdd открывает форму добавления или закрывает ее, если она уже открыта.
func (m Mode) ToggleAdd() Mode {
	if m.IsAdding() {
		return Closed()
	}
	return Adding()
}
