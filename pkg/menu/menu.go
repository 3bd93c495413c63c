// Package menu implements a paginated completion menu for an interactive
// line editor.
//
// The menu caches suggestions fetched from a completion.Completer, pages them
// according to how many entries actually fit in the terminal, moves the
// selection across rows and pages as classified events arrive, and renders
// the current page to a string for the host to paint.
//
// Pages are recorded lazily in a ledger as the user moves forward. The sum of
// the sizes of the pages up to and including the current one is always the
// offset at which the next page starts.
package menu

import (
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/listmenu/pkg/completion"
)

// selectionChar starts a row selector in the query, e.g. "!3".
const selectionChar = '!'

const (
	DefaultName            = "search_menu"
	DefaultPageSize        = 10
	DefaultMarker          = "? "
	DefaultMaxEntryLines   = 5
	DefaultMultilineMarker = ":::"
)

// TextStyle holds the styles used when rendering with color.
type TextStyle struct {
	Text         lipgloss.Style
	SelectedText lipgloss.Style
	Description  lipgloss.Style
}

// DefaultTextStyle returns green reversed selection, dark gray entries and
// yellow descriptions.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Text:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SelectedText: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Reverse(true),
		Description:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// ListMenu is a paginated list of suggestions.
type ListMenu struct {
	name     string
	style    TextStyle
	pageSize int
	marker   string
	active   bool

	// values caches the last completer response. In chronological mode it
	// holds only the window for the current page; in filtered mode it holds
	// the full result and pages are sliced out of it.
	values []completion.Suggestion
	// querySize is the total count in chronological mode, nil otherwise.
	querySize *int

	rowPosition     int
	maxLines        int
	multilineMarker string

	pages []Page
	page  int

	event *Event
	// input is the buffer snapshot taken on activation when only the
	// buffer difference is sent to the completer.
	input                *string
	onlyBufferDifference bool

	log logr.Logger
}

// Option configures a ListMenu.
type Option func(*ListMenu)

// WithName sets the menu name.
func WithName(name string) Option {
	return func(m *ListMenu) {
		m.name = name
	}
}

// WithTextStyle sets the style of unselected entries.
func WithTextStyle(s lipgloss.Style) Option {
	return func(m *ListMenu) {
		m.style.Text = s
	}
}

// WithSelectedTextStyle sets the style of the selected entry and the banner.
func WithSelectedTextStyle(s lipgloss.Style) Option {
	return func(m *ListMenu) {
		m.style.SelectedText = s
	}
}

// WithDescriptionTextStyle sets the style of entry descriptions.
func WithDescriptionTextStyle(s lipgloss.Style) Option {
	return func(m *ListMenu) {
		m.style.Description = s
	}
}

// WithPageSize sets the number of entries requested per page. Values below
// one are raised to one.
func WithPageSize(size int) Option {
	return func(m *ListMenu) {
		m.pageSize = max(size, 1)
	}
}

// WithOnlyBufferDifference selects between sending the completer only the
// text typed since activation (true) or the buffer up to the cursor (false).
func WithOnlyBufferDifference(only bool) Option {
	return func(m *ListMenu) {
		m.onlyBufferDifference = only
	}
}

// WithMarker sets the indicator shown before the prompt while the menu is available.
func WithMarker(marker string) Option {
	return func(m *ListMenu) {
		m.marker = marker
	}
}

// WithMaxEntryLines caps how many lines of a multi-line entry are shown.
func WithMaxEntryLines(lines int) Option {
	return func(m *ListMenu) {
		m.maxLines = max(lines, 0)
	}
}

// WithMultilineMarker sets the prefix of continuation lines.
func WithMultilineMarker(marker string) Option {
	return func(m *ListMenu) {
		m.multilineMarker = marker
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(log logr.Logger) Option {
	return func(m *ListMenu) {
		m.log = log
	}
}

// New creates a ListMenu with defaults.
func New(opts ...Option) *ListMenu {
	m := &ListMenu{
		name:                 DefaultName,
		style:                DefaultTextStyle(),
		pageSize:             DefaultPageSize,
		marker:               DefaultMarker,
		maxLines:             DefaultMaxEntryLines,
		multilineMarker:      DefaultMultilineMarker,
		onlyBufferDifference: true,
		log:                  logr.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the menu name.
func (m *ListMenu) Name() string { return m.name }

// Indicator returns the marker shown before the prompt.
func (m *ListMenu) Indicator() string { return m.marker }

// IsActive reports whether the menu is open.
func (m *ListMenu) IsActive() bool { return m.active }

// CanQuickComplete is always false.
func (m *ListMenu) CanQuickComplete() bool { return false }

// CanPartiallyComplete is always false. The menu never compares all values
// to complete a common prefix.
func (m *ListMenu) CanPartiallyComplete() bool { return false }

// SetCursorPos is accepted for host compatibility and ignored.
func (m *ListMenu) SetCursorPos(_, _ int) {}

// MinRows is the minimum number of rows the host should reserve.
func (m *ListMenu) MinRows() int { return m.maxLines + 1 }

// Page returns the current page index.
func (m *ListMenu) Page() int { return m.page }

// RowPosition returns the selected row within the current page.
func (m *ListMenu) RowPosition() int { return m.rowPosition }

// Pages returns a copy of the page ledger.
func (m *ListMenu) Pages() []Page {
	return append([]Page(nil), m.pages...)
}

// QuerySize returns the tracked total in chronological mode.
func (m *ListMenu) QuerySize() (int, bool) {
	if m.querySize == nil {
		return 0, false
	}
	return *m.querySize, true
}

// SelectedIndex returns the absolute index of the selected entry.
func (m *ListMenu) SelectedIndex() int {
	return m.valuesBeforePage() + m.rowPosition
}

// MenuEvent records an event to be applied by the next UpdateWorkingDetails.
// Activation state changes immediately.
func (m *ListMenu) MenuEvent(e Event) {
	switch e {
	case Activate:
		m.active = true
	case Deactivate:
		m.active = false
		m.input = nil
	}
	m.event = &e
}

// totalValues is the number of entries available across all pages.
func (m *ListMenu) totalValues() int {
	if m.querySize != nil {
		return *m.querySize
	}
	return len(m.values)
}
