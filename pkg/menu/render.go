package menu

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	endOfLine     = "\r\n"
	noPageMessage = "PAGE NOT FOUND"
	ellipsis      = "..."
)

// MenuString renders the current page followed by the status banner. When
// useColor is false the selected row is upper-cased and prefixed with '>'.
func (m *ListMenu) MenuString(_ int, useColor bool) string {
	page, ok := m.currentPage()
	if !ok {
		return m.noPageMsg(useColor)
	}

	before := m.valuesBeforePage()
	var b strings.Builder
	for index, s := range m.GetValues() {
		if index >= page.Size {
			break
		}
		rowNumber := fmt.Sprintf("%d: ", index+before)
		b.WriteString(m.createString(m.formatEntry(s.Value), s.Description, index, rowNumber, useColor))
	}
	b.WriteString(m.bannerMessage(page, useColor))
	return b.String()
}

// formatEntry prefixes continuation lines with the multiline marker and
// truncates entries longer than maxLines.
func (m *ListMenu) formatEntry(value string) string {
	lines := splitLines(value)
	if len(lines) <= m.maxLines {
		return strings.ReplaceAll(value, "\n", endOfLine+m.multilineMarker)
	}

	var b strings.Builder
	for _, line := range lines[:m.maxLines] {
		b.WriteString(line)
		b.WriteString(endOfLine)
		b.WriteString(m.multilineMarker)
	}
	b.WriteString(ellipsis)
	return b.String()
}

func (m *ListMenu) textStyle(index int) lipgloss.Style {
	if index == m.rowPosition {
		return m.style.SelectedText
	}
	return m.style.Text
}

// createString renders one menu entry.
func (m *ListMenu) createString(line, description string, index int, rowNumber string, useColor bool) string {
	if useColor {
		desc := ""
		if description != "" {
			desc = m.style.Description.Render("("+description+")") + " "
		}
		return rowNumber + desc + renderLines(m.textStyle(index), line) + endOfLine
	}

	desc := ""
	if description != "" {
		desc = "(" + description + ") "
	}
	if index == m.rowPosition {
		return rowNumber + desc + ">" + strings.ToUpper(line) + endOfLine
	}
	return rowNumber + desc + line + endOfLine
}

// renderLines styles each line on its own so that lipgloss does not pad
// multi-line text to a common width.
func renderLines(style lipgloss.Style, text string) string {
	parts := strings.Split(text, endOfLine)
	for i, p := range parts {
		if p != "" {
			parts[i] = style.Render(p)
		}
	}
	return strings.Join(parts, endOfLine)
}

func (m *ListMenu) bannerMessage(page Page, useColor bool) string {
	last := satSub(m.valuesUntilCurrentPage(), 1)
	first := 0
	if len(m.values) > 0 && m.page > 0 {
		first = satSub(last, page.Size) + 1
	}

	full := ""
	if page.Full {
		full = "[FULL]"
	}
	status := fmt.Sprintf("Page %d: records %d - %d  total: %d  %s",
		m.page+1, first, last, m.totalValues(), full)

	if useColor {
		return m.style.SelectedText.Render(status)
	}
	return status
}

func (m *ListMenu) noPageMsg(useColor bool) string {
	if useColor {
		return m.style.SelectedText.Render(noPageMessage)
	}
	return noPageMessage
}
