package menu

// ReplaceInBuffer writes the selected suggestion into the editor, replacing
// its span (clamped to the buffer) and placing the cursor after the inserted
// text. The change is recorded as one undoable edit. Without a selected
// suggestion the buffer is left untouched.
func (m *ListMenu) ReplaceInBuffer(editor Editor) {
	s, ok := m.selectedValue()
	if !ok {
		return
	}

	bufferLen := len(editor.Buffer())
	start := clamp(s.Span.Start, 0, bufferLen)
	end := clamp(s.Span.End, start, bufferLen)

	value := s.Value
	if s.AppendWhitespace {
		value += " "
	}

	editor.CreateUndoPoint()
	editor.ReplaceRange(start, end, value)
	editor.SetInsertionPoint(start + len(value))

	m.log.V(1).Info("suggestion accepted", "menu", m.name, "index", m.SelectedIndex(), "start", start, "end", end)
}
