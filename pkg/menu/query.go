package menu

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/oakwood-commons/listmenu/pkg/completion"
)

// UpdateValues refreshes the cached suggestions from the completer. When the
// pending event is an Edit and the query carries no row selector, the page
// ledger is reset first.
func (m *ListMenu) UpdateValues(editor Editor, completer completion.Completer) {
	edit := m.event != nil && *m.event == Edit
	m.updateValues(editor, completer, edit)
}

func (m *ListMenu) updateValues(editor Editor, completer completion.Completer, edit bool) {
	pos, input := m.queryInput(editor)

	sel := ParseSelection(input, selectionChar)
	m.updateRowPos(sel)

	if edit && !sel.HasIndex {
		m.resetPosition()
	}

	if sel.Remainder == "" {
		total := completer.TotalCompletions(sel.Remainder, pos)
		m.querySize = &total

		skip := m.valuesBeforePage()
		take := m.pageSize
		if page, ok := m.currentPage(); ok {
			take = page.Size
		}
		m.values = completer.PartialComplete(sel.Remainder, pos, skip, take)
		m.log.V(2).Info("fetched chronological window", "skip", skip, "take", take, "total", total, "got", len(m.values))
		return
	}

	m.querySize = nil
	m.values = completer.Complete(sel.Remainder, pos)
	m.log.V(2).Info("fetched filtered values", "query", sel.Remainder, "got", len(m.values))
}

// queryInput returns the position and text to send to the completer.
func (m *ListMenu) queryInput(editor Editor) (int, string) {
	buffer := editor.Buffer()
	pos := clamp(editor.InsertionPoint(), 0, len(buffer))

	if !m.onlyBufferDifference {
		return pos, buffer[:pos]
	}
	if m.input == nil {
		return pos, ""
	}
	start, inserted := stringDifference(buffer, *m.input)
	if inserted == "" {
		return pos, ""
	}
	return start + len(inserted), inserted
}

// stringDifference returns the offset and text of a single insertion that
// turns snapshot into current. Anything other than one contiguous insertion
// yields an empty string.
func stringDifference(current, snapshot string) (int, string) {
	if snapshot == "" {
		return 0, current
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(snapshot, current, false)

	offset := 0
	inserted := ""
	found := false
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if !found {
				offset += len(d.Text)
			}
		case diffmatchpatch.DiffInsert:
			if found {
				return len(current), ""
			}
			found = true
			inserted = d.Text
		case diffmatchpatch.DiffDelete:
			return len(current), ""
		}
	}
	if !found {
		return len(current), ""
	}
	return offset, inserted
}

// GetValues returns the cached suggestions that belong to the current page.
func (m *ListMenu) GetValues() []completion.Suggestion {
	if m.querySize != nil {
		// Only the current page window was fetched.
		return m.values
	}
	if len(m.values) == 0 {
		return m.values
	}

	start := m.valuesBeforePage()
	end := m.valuesUntilCurrentPage()
	if m.page >= len(m.pages) {
		end = start + m.pageSize
	}
	end = min(end, m.totalValues())
	start = min(start, end)
	return m.values[start:end]
}

// selectedValue returns the suggestion at the current row. Only rows shown
// on the current page can be selected.
func (m *ListMenu) selectedValue() (completion.Suggestion, bool) {
	page, ok := m.currentPage()
	if !ok {
		return completion.Suggestion{}, false
	}
	values := m.GetValues()
	if m.rowPosition < 0 || m.rowPosition >= min(len(values), page.Size) {
		return completion.Suggestion{}, false
	}
	return values[m.rowPosition], true
}
