// Package config loads listmenu settings from YAML or TOML files layered on
// top of embedded defaults.
package config

// Config is the file schema. Optional scalars are pointers so that a file
// only overrides the fields it sets.
type Config struct {
	Menu    MenuConfig    `yaml:"menu" toml:"menu"`
	History HistoryConfig `yaml:"history" toml:"history"`
}

// MenuConfig configures the completion menu.
type MenuConfig struct {
	Name                 *string     `yaml:"name,omitempty" toml:"name,omitempty"`
	PageSize             *int        `yaml:"page_size,omitempty" toml:"page_size,omitempty"`
	Marker               *string     `yaml:"marker,omitempty" toml:"marker,omitempty"`
	MaxEntryLines        *int        `yaml:"max_entry_lines,omitempty" toml:"max_entry_lines,omitempty"`
	MultilineMarker      *string     `yaml:"multiline_marker,omitempty" toml:"multiline_marker,omitempty"`
	OnlyBufferDifference *bool       `yaml:"only_buffer_difference,omitempty" toml:"only_buffer_difference,omitempty"`
	Colors               ColorConfig `yaml:"colors" toml:"colors"`
}

// ColorConfig holds lipgloss color strings: ANSI numbers ("81") or hex ("#5fafff").
type ColorConfig struct {
	Text               string `yaml:"text,omitempty" toml:"text,omitempty"`
	SelectedText       string `yaml:"selected_text,omitempty" toml:"selected_text,omitempty"`
	SelectedBackground string `yaml:"selected_background,omitempty" toml:"selected_background,omitempty"`
	Description        string `yaml:"description,omitempty" toml:"description,omitempty"`
}

// HistoryConfig configures the history store and its completer.
type HistoryConfig struct {
	Path   string `yaml:"path,omitempty" toml:"path,omitempty"`
	Filter string `yaml:"filter,omitempty" toml:"filter,omitempty"`
}
