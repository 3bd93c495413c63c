package config

import (
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/listmenu/pkg/menu"
)

// MenuOptions translates the menu section into menu options.
func (c Config) MenuOptions(log logr.Logger) []menu.Option {
	m := c.Menu
	opts := []menu.Option{menu.WithLogger(log)}
	if m.Name != nil {
		opts = append(opts, menu.WithName(*m.Name))
	}
	if m.PageSize != nil {
		opts = append(opts, menu.WithPageSize(*m.PageSize))
	}
	if m.Marker != nil {
		opts = append(opts, menu.WithMarker(*m.Marker))
	}
	if m.MaxEntryLines != nil {
		opts = append(opts, menu.WithMaxEntryLines(*m.MaxEntryLines))
	}
	if m.MultilineMarker != nil {
		opts = append(opts, menu.WithMultilineMarker(*m.MultilineMarker))
	}
	if m.OnlyBufferDifference != nil {
		opts = append(opts, menu.WithOnlyBufferDifference(*m.OnlyBufferDifference))
	}

	colors := m.Colors
	if colors.Text != "" {
		opts = append(opts, menu.WithTextStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Text))))
	}
	if colors.SelectedText != "" || colors.SelectedBackground != "" {
		style := lipgloss.NewStyle().Bold(true)
		if colors.SelectedText != "" {
			style = style.Foreground(lipgloss.Color(colors.SelectedText))
		}
		if colors.SelectedBackground != "" {
			style = style.Background(lipgloss.Color(colors.SelectedBackground))
		}
		opts = append(opts, menu.WithSelectedTextStyle(style))
	}
	if colors.Description != "" {
		opts = append(opts, menu.WithDescriptionTextStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Description))))
	}
	return opts
}
