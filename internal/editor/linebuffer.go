// Package editor provides a byte-indexed line buffer with undo, usable as the
// editor collaborator of a menu.
package editor

// LineBuffer is a single line of text with an insertion point.
type LineBuffer struct {
	text   string
	cursor int
	undo   []state
}

type state struct {
	text   string
	cursor int
}

// New creates a buffer holding text with the cursor at its end.
func New(text string) *LineBuffer {
	return &LineBuffer{text: text, cursor: len(text)}
}

// Buffer returns the current text.
func (b *LineBuffer) Buffer() string { return b.text }

// InsertionPoint returns the cursor byte offset.
func (b *LineBuffer) InsertionPoint() int { return b.cursor }

// Set replaces text and cursor without recording an undo point.
func (b *LineBuffer) Set(text string, cursor int) {
	b.text = text
	b.cursor = clamp(cursor, 0, len(text))
}

// SetInsertionPoint moves the cursor, clamped to the text.
func (b *LineBuffer) SetInsertionPoint(pos int) {
	b.cursor = clamp(pos, 0, len(b.text))
}

// ReplaceRange replaces text[start:end]. Out of range bounds are clamped.
func (b *LineBuffer) ReplaceRange(start, end int, text string) {
	start = clamp(start, 0, len(b.text))
	end = clamp(end, start, len(b.text))
	b.text = b.text[:start] + text + b.text[end:]
	b.cursor = clamp(b.cursor, 0, len(b.text))
}

// InsertString inserts text at the cursor and moves the cursor past it.
func (b *LineBuffer) InsertString(text string) {
	b.ReplaceRange(b.cursor, b.cursor, text)
	b.cursor += len(text)
}

// CreateUndoPoint records the current state.
func (b *LineBuffer) CreateUndoPoint() {
	b.undo = append(b.undo, state{text: b.text, cursor: b.cursor})
}

// Undo restores the last recorded state. It reports false when there is
// nothing to undo.
func (b *LineBuffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	last := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.text, b.cursor = last.text, last.cursor
	return true
}

// Clear empties the buffer and its undo history.
func (b *LineBuffer) Clear() {
	b.text, b.cursor, b.undo = "", 0, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
