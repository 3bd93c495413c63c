package ui

import (
	tea "charm.land/bubbletea/v2"
)

// RunModel runs the host until the user quits and returns the final model.
// Extra ProgramOptions (e.g., custom IO) are passed to tea.NewProgram.
func RunModel(m *Model, opts ...tea.ProgramOption) (*Model, error) {
	prog := tea.NewProgram(m, opts...)
	final, err := prog.Run()
	if fm, ok := final.(*Model); ok && fm != nil {
		return fm, err
	}
	return m, err
}
