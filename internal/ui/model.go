// Package ui hosts the completion menu in a Bubble Tea line editor.
package ui

import (
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/listmenu/internal/editor"
	"github.com/oakwood-commons/listmenu/pkg/completion"
	"github.com/oakwood-commons/listmenu/pkg/menu"
)

// Recorder stores submitted lines.
type Recorder interface {
	Add(text string) (int, error)
}

// Model is the interactive host: a single editable line with the menu below.
type Model struct {
	Input     textinput.Model
	Buffer    *editor.LineBuffer
	Menu      *menu.ListMenu
	Completer completion.Completer
	Recorder  Recorder
	Screen    menu.Screen
	NoColor   bool
	Log       logr.Logger

	// Submitted holds lines entered with the menu closed, oldest first.
	Submitted []string
	// Err is the last error from the recorder.
	Err error

	promptStyle lipgloss.Style
	helpStyle   lipgloss.Style
	errStyle    lipgloss.Style
}

// NewModel creates a focused host around m and c.
func NewModel(m *menu.ListMenu, c completion.Completer, screen menu.Screen) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.CharLimit = 4096
	ti.SetWidth(max(screen.Width-len(m.Indicator())-1, 1))
	ti.Focus()

	return &Model{
		Input:       ti,
		Buffer:      editor.New(""),
		Menu:        m,
		Completer:   c,
		Screen:      screen,
		Log:         logr.Discard(),
		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		helpStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Screen = menu.Screen{Width: msg.Width, Height: msg.Height}
		m.Input.SetWidth(max(msg.Width-len(m.Menu.Indicator())-1, 1))
		return m, nil

	case tea.KeyPressMsg:
		action, event := ResolveKey(msg.String(), m.Menu.IsActive())
		switch action {
		case ActionQuit:
			return m, tea.Quit
		case ActionActivate:
			m.sendMenu(menu.Activate)
			return m, nil
		case ActionDeactivate:
			m.sendMenu(menu.Deactivate)
			return m, nil
		case ActionMenu:
			m.sendMenu(event)
			return m, nil
		case ActionAccept:
			m.Menu.ReplaceInBuffer(m.Buffer)
			m.syncInputFromBuffer()
			m.sendMenu(menu.Deactivate)
			return m, nil
		case ActionSubmit:
			m.submit()
			return m, nil
		case ActionUndo:
			if m.Buffer.Undo() {
				m.syncInputFromBuffer()
				m.editMenu()
			}
			return m, nil
		}
	}

	before, beforePos := m.Input.Value(), m.Input.Position()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if m.Input.Value() != before {
		m.Buffer.CreateUndoPoint()
	}
	if m.Input.Value() != before || m.Input.Position() != beforePos {
		m.syncBufferFromInput()
		if m.Input.Value() != before {
			m.editMenu()
		}
	}
	return m, cmd
}

func (m *Model) sendMenu(e menu.Event) {
	m.Menu.MenuEvent(e)
	m.Menu.UpdateWorkingDetails(m.Buffer, m.Completer, m.Screen)
}

func (m *Model) editMenu() {
	if m.Menu.IsActive() {
		m.sendMenu(menu.Edit)
	}
}

func (m *Model) submit() {
	line := m.Buffer.Buffer()
	if strings.TrimSpace(line) != "" {
		m.Submitted = append(m.Submitted, line)
		if m.Recorder != nil {
			if _, err := m.Recorder.Add(line); err != nil {
				m.Err = err
				m.Log.Error(err, "failed to record line")
			}
		}
	}
	m.Buffer.Clear()
	m.syncInputFromBuffer()
}

// syncBufferFromInput copies text and cursor from the text input. The input
// counts runes; the buffer counts bytes.
func (m *Model) syncBufferFromInput() {
	value := m.Input.Value()
	runes := []rune(value)
	pos := min(m.Input.Position(), len(runes))
	m.Buffer.Set(value, len(string(runes[:pos])))
}

func (m *Model) syncInputFromBuffer() {
	text := m.Buffer.Buffer()
	m.Input.SetValue(text)
	m.Input.SetCursor(utf8.RuneCountInString(text[:m.Buffer.InsertionPoint()]))
}

func (m *Model) View() tea.View {
	var b strings.Builder

	indicator := strings.Repeat(" ", len(m.Menu.Indicator()))
	if m.Menu.IsActive() {
		indicator = m.Menu.Indicator()
	}
	b.WriteString(m.style(m.promptStyle, indicator))
	b.WriteString(m.Input.View())

	if m.Menu.IsActive() {
		b.WriteString("\n")
		out := m.Menu.MenuString(max(m.Screen.Height-2, 0), !m.NoColor)
		b.WriteString(strings.ReplaceAll(out, "\r\n", "\n"))
	}
	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(m.style(m.errStyle, m.Err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(m.style(m.helpStyle, HelpText(m.Menu.IsActive())))

	return tea.NewView(b.String())
}

func (m *Model) style(s lipgloss.Style, text string) string {
	if m.NoColor {
		return text
	}
	return s.Render(text)
}
