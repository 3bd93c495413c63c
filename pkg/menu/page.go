package menu

// Page records how many entries a visited page shows and whether the page
// was ever found to hold more entries than the screen could display.
type Page struct {
	Size int
	Full bool
}

// sumPages adds sizes and ORs the full flags.
func sumPages(pages []Page) Page {
	var total Page
	for _, p := range pages {
		total.Size += p.Size
		total.Full = total.Full || p.Full
	}
	return total
}

// currentPage returns the ledger entry for the current page.
func (m *ListMenu) currentPage() (Page, bool) {
	if m.page < 0 || m.page >= len(m.pages) {
		return Page{}, false
	}
	return m.pages[m.page], true
}

// valuesBeforePage is the offset of the first entry of the current page.
func (m *ListMenu) valuesBeforePage() int {
	return sumPages(m.pages[:min(m.page, len(m.pages))]).Size
}

// valuesUntilCurrentPage is the offset where the page after the current one starts.
func (m *ListMenu) valuesUntilCurrentPage() int {
	return sumPages(m.pages[:min(m.page+1, len(m.pages))]).Size
}

// setActualPageSize stores the number of entries that fit on the current
// page. Full is sticky: once set it survives any later recomputation.
func (m *ListMenu) setActualPageSize(printable int) {
	if m.page < 0 || m.page >= len(m.pages) {
		return
	}
	p := &m.pages[m.page]
	p.Full = p.Size > printable || p.Full
	p.Size = printable
}

func (m *ListMenu) resetPosition() {
	m.page = 0
	m.rowPosition = 0
	m.pages = nil
}

// satSub returns a-b, or zero when b > a.
func satSub(a, b int) int {
	if b > a {
		return 0
	}
	return a - b
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
