package menu

// Editor is the line buffer the menu reads its query from and writes accepted
// suggestions into. Offsets are byte offsets into Buffer().
type Editor interface {
	Buffer() string
	InsertionPoint() int

	// ReplaceRange replaces buffer[start:end] with text. Callers pass bounds
	// already clamped to the buffer.
	ReplaceRange(start, end int, text string)
	SetInsertionPoint(pos int)

	// CreateUndoPoint marks the current buffer state so that the edits that
	// follow can be undone as one unit.
	CreateUndoPoint()
}

// Painter reports the current terminal geometry. The menu queries it on every
// layout computation and never caches the result.
type Painter interface {
	ScreenWidth() int
	ScreenHeight() int
}

// Screen is a Painter with a fixed size.
type Screen struct {
	Width  int
	Height int
}

// ScreenWidth returns the fixed width.
func (s Screen) ScreenWidth() int { return s.Width }

// ScreenHeight returns the fixed height.
func (s Screen) ScreenHeight() int { return s.Height }
