package menu

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Selection is the result of scanning a query for a row selector.
type Selection struct {
	// Remainder is the query with the selector removed.
	Remainder string
	// Index is the selected row; valid only when HasIndex is set.
	Index    int
	HasIndex bool
}

// ParseSelection looks for marker followed by decimal digits (or by nothing
// at the end of input) and returns the parsed index and the input without
// the selector. A bare trailing marker selects row 0. Indexes that overflow
// an int saturate and are later ignored as out of range.
func ParseSelection(input string, marker rune) Selection {
	size := utf8.RuneLen(marker)
	if size < 0 {
		return Selection{Remainder: input}
	}
	for i, r := range input {
		if r != marker {
			continue
		}
		rest := input[i+size:]
		digits := 0
		for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
			digits++
		}
		if digits == 0 && rest != "" {
			continue
		}
		index := 0
		if digits > 0 {
			n, err := strconv.Atoi(rest[:digits])
			if err != nil {
				n = math.MaxInt
			}
			index = n
		}
		return Selection{
			Remainder: input[:i] + rest[digits:],
			Index:     index,
			HasIndex:  true,
		}
	}
	return Selection{Remainder: input}
}

// updateRowPos moves the selection to an absolute row typed by the user if
// that row is on the current page.
func (m *ListMenu) updateRowPos(sel Selection) {
	if !sel.HasIndex {
		return
	}
	page, ok := m.currentPage()
	if !ok {
		return
	}
	row := satSub(sel.Index, m.valuesBeforePage())
	if row < page.Size {
		m.rowPosition = row
	}
}
