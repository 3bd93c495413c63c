package menu

import (
	"github.com/oakwood-commons/listmenu/pkg/completion"
)

// maxRedispatch bounds how many times one event may turn into another.
// Moving past the last row becomes NextPage and moving before the first row
// becomes PreviousPage; neither of those turns into anything else.
const maxRedispatch = 1

// UpdateWorkingDetails applies the pending event, refreshing values from the
// completer and fitting the current page to the painter's screen.
func (m *ListMenu) UpdateWorkingDetails(editor Editor, completer completion.Completer, painter Painter) {
	if m.event == nil {
		return
	}
	e := *m.event
	m.apply(e, editor, completer, painter, maxRedispatch)
	m.event = nil

	m.log.V(1).Info("menu event applied",
		"menu", m.name,
		"event", e.String(),
		"page", m.page,
		"row", m.rowPosition,
		"pages", len(m.pages),
		"total", m.totalValues(),
	)
}

func (m *ListMenu) apply(e Event, editor Editor, completer completion.Completer, painter Painter, hops int) {
	switch {
	case e == Activate:
		m.resetPosition()
		if m.onlyBufferDifference {
			buffer := editor.Buffer()
			m.input = &buffer
		} else {
			m.input = nil
		}
		m.updateValues(editor, completer, false)
		m.pages = append(m.pages, Page{Size: m.printableEntries(painter)})

	case e == Deactivate:
		m.active = false
		m.input = nil

	case e == Edit:
		m.updateValues(editor, completer, true)
		// A row selector keeps the ledger; only a reset ledger needs a page.
		if _, ok := m.currentPage(); !ok {
			m.pages = append(m.pages, Page{Size: m.printableEntries(painter)})
		}

	case e.moveNext():
		page, ok := m.currentPage()
		if !ok {
			return
		}
		if m.rowPosition+1 >= page.Size {
			if hops > 0 {
				m.apply(NextPage, editor, completer, painter, hops-1)
			}
			return
		}
		m.rowPosition++

	case e.movePrevious():
		if m.rowPosition > 0 {
			m.rowPosition--
			return
		}
		target := satSub(len(m.pages), 1)
		if m.page > 0 {
			target = m.page - 1
		}
		if target < len(m.pages) {
			m.rowPosition = satSub(m.pages[target].Size, 1)
		}
		if hops > 0 {
			m.apply(PreviousPage, editor, completer, painter, hops-1)
		}

	case e == NextPage:
		m.nextPage(editor, completer, painter)

	case e == PreviousPage:
		if m.page > 0 {
			m.page--
		} else {
			m.page = satSub(len(m.pages), 1)
		}
		m.updateValues(editor, completer, false)
	}
}

func (m *ListMenu) nextPage(editor Editor, completer completion.Completer, painter Painter) {
	if m.totalValues() == 0 || m.valuesUntilCurrentPage() > satSub(m.totalValues(), 1) {
		// Everything has been shown; wrap to the first page.
		m.rowPosition = 0
		m.page = 0
		m.updateValues(editor, completer, false)
		return
	}

	if m.page < len(m.pages) {
		if m.pages[m.page].Full {
			m.rowPosition = 0
			m.page++
			if m.page >= len(m.pages) {
				m.pages = append(m.pages, Page{Size: m.pageSize})
			}
		} else {
			// Not yet proven full: try to show more on the same page.
			m.pages[m.page].Size += m.pageSize
		}
	}

	m.updateValues(editor, completer, false)
	printable := m.printableEntries(painter)
	m.log.V(2).Info("fitting page", "page", m.page, "printable", printable)
	m.setActualPageSize(printable)
}
