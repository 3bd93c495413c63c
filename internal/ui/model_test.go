package ui

import (
	"errors"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/listmenu/pkg/completion"
	"github.com/oakwood-commons/listmenu/pkg/menu"
)

type fakeRecorder struct {
	lines []string
	err   error
}

func (f *fakeRecorder) Add(text string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.lines = append(f.lines, text)
	return len(f.lines), nil
}

func newTestModel(values ...string) *Model {
	m := NewModel(menu.New(), completion.NewListCompleter(values...), menu.Screen{Width: 80, Height: 24})
	m.NoColor = true
	return m
}

func press(m *Model, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func viewText(m *Model) string {
	return fmt.Sprint(m.View().Content)
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestTypingMirrorsIntoBuffer(t *testing.T) {
	m := newTestModel()
	typeText(m, "git")
	assert.Equal(t, "git", m.Buffer.Buffer())
	assert.Equal(t, 3, m.Buffer.InsertionPoint())

	press(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 2, m.Buffer.InsertionPoint())
	assert.False(t, m.Menu.IsActive())
}

func TestTabActivatesMenu(t *testing.T) {
	m := newTestModel("git status", "git log", "ls -la")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	require.True(t, m.Menu.IsActive())

	view := viewText(m)
	assert.Contains(t, view, "? ")
	assert.Contains(t, view, "0: >GIT STATUS\n")
	assert.Contains(t, view, "1: git log\n")
	assert.Contains(t, view, "Page 1: records 0 - 2  total: 3")
	assert.Contains(t, view, HelpText(true))
}

func TestCtrlSpaceActivatesMenu(t *testing.T) {
	m := newTestModel("a")
	press(m, tea.KeyPressMsg{Code: tea.KeySpace, Mod: tea.ModCtrl})
	assert.True(t, m.Menu.IsActive())
}

func TestTypingFiltersOpenMenu(t *testing.T) {
	m := newTestModel("git status", "git log", "ls -la")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(m, "log")

	view := viewText(m)
	assert.Contains(t, view, "0: >GIT LOG\n")
	assert.NotContains(t, view, "status")
}

func TestNavigationKeys(t *testing.T) {
	m := newTestModel("a", "b", "c")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})

	press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, m.Menu.RowPosition())
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 2, m.Menu.RowPosition())
	press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Menu.RowPosition())
	press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 0, m.Menu.RowPosition())
	press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 1, m.Menu.RowPosition())
	press(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 0, m.Menu.RowPosition())
}

func TestEnterAcceptsSelection(t *testing.T) {
	m := newTestModel("git status", "git log", "ls -la")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(m, "log")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.False(t, m.Menu.IsActive())
	assert.Equal(t, "git log", m.Buffer.Buffer())
	assert.Equal(t, 7, m.Buffer.InsertionPoint())
	assert.Equal(t, "git log", m.Input.Value())
	assert.Equal(t, 7, m.Input.Position())
	assert.Empty(t, m.Submitted)

	press(m, ctrl('z'))
	assert.Equal(t, "log", m.Buffer.Buffer())
	assert.Equal(t, "log", m.Input.Value())
}

func TestEscDeactivates(t *testing.T) {
	m := newTestModel("a")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, m.Menu.IsActive())
	assert.NotContains(t, viewText(m), "Page 1")
}

func TestEnterSubmitsWhenClosed(t *testing.T) {
	m := newTestModel()
	rec := &fakeRecorder{}
	m.Recorder = rec

	typeText(m, "make test")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, []string{"make test"}, m.Submitted)
	assert.Equal(t, []string{"make test"}, rec.lines)
	assert.Equal(t, "", m.Buffer.Buffer())
	assert.Equal(t, "", m.Input.Value())

	// Blank lines are not recorded.
	typeText(m, "  ")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Len(t, rec.lines, 1)
}

func TestRecorderErrorIsShown(t *testing.T) {
	m := newTestModel()
	m.Recorder = &fakeRecorder{err: errors.New("disk full")}
	typeText(m, "x")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	require.Error(t, m.Err)
	assert.Contains(t, viewText(m), "disk full")
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	cmd := press(m, ctrl('c'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSizeUpdatesScreen(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, menu.Screen{Width: 120, Height: 10}, m.Screen)
}

func TestSmallWindowPagesMenu(t *testing.T) {
	m := newTestModel("a", "b", "c", "d", "e", "f")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 5})
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Contains(t, viewText(m), "Page 1: records 0 - 1")

	press(m, tea.KeyPressMsg{Code: tea.KeyPgDown})
	assert.Equal(t, 0, m.Menu.Page())
	press(m, tea.KeyPressMsg{Code: tea.KeyPgDown})
	assert.Equal(t, 1, m.Menu.Page())
}
