package menu

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// lineWidth is the display width of s ignoring escape sequences.
func lineWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// estimateSingleLineWraps returns how many extra rows a line takes when
// wrapped at the given number of columns.
func estimateSingleLineWraps(line string, columns int) int {
	columns = max(columns, 1)
	rows := (lineWidth(line) + columns - 1) / columns
	return satSub(rows, 1)
}

// splitLines splits on line feeds, dropping a trailing carriage return from
// each line and the empty line after a final line feed.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// numberOfLines returns the rows an entry takes on screen. Entries with more
// than maxLines lines are truncated and followed by an ellipsis row.
func numberOfLines(entry string, maxLines, columns int) int {
	if !strings.Contains(entry, "\n") {
		return 1 + estimateSingleLineWraps(entry, columns)
	}

	lines := splitLines(entry)
	printable := len(lines)
	if printable > maxLines {
		printable = maxLines + 1
	}

	wraps := 0
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		wraps += estimateSingleLineWraps(line, columns)
	}
	return printable + wraps
}

func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	count := 0
	for n > 0 {
		n /= 10
		count++
	}
	return count
}

func (m *ListMenu) numberOfLines(entry string, columns int) int {
	return numberOfLines(entry, m.maxLines, columns)
}

// entryColumns is the width left for entry text after the indicator and the
// row number.
func (m *ListMenu) entryColumns(screenWidth, index int) int {
	return satSub(screenWidth, runewidth.StringWidth(m.marker)+countDigits(index))
}

// printableEntries returns how many of the current values fit on screen. Two
// rows are reserved for the prompt and the banner. A page with values always
// holds at least one entry, even when it overflows the screen, so paging
// forward keeps advancing.
func (m *ListMenu) printableEntries(painter Painter) int {
	available := satSub(painter.ScreenHeight(), 2)
	width := painter.ScreenWidth()

	values := m.GetValues()
	entries, total := 0, 0
	for _, s := range values {
		next := total + m.numberOfLines(s.Value, m.entryColumns(width, entries))
		if next >= available {
			break
		}
		entries++
		total = next
	}
	if entries == 0 && len(values) > 0 {
		return 1
	}
	return entries
}

// MenuRequiredLines returns the rows needed to show every current value plus
// the banner at the given terminal width.
func (m *ListMenu) MenuRequiredLines(terminalColumns int) int {
	lines := 0
	for i, s := range m.GetValues() {
		lines += m.numberOfLines(s.Value, m.entryColumns(terminalColumns, i))
	}
	return lines + 1
}
