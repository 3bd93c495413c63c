package ui

import (
	"github.com/oakwood-commons/listmenu/pkg/menu"
)

// Action is what a key does in the host.
type Action string

const (
	ActionNone       Action = ""
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionAccept     Action = "accept"
	ActionSubmit     Action = "submit"
	ActionUndo       Action = "undo"
	ActionQuit       Action = "quit"
	ActionMenu       Action = "menu"
)

// MenuKeyBindings maps keys to menu events while the menu is open.
var MenuKeyBindings = map[string]menu.Event{
	"tab":       menu.NextElement,
	"shift+tab": menu.PreviousElement,
	"down":      menu.MoveDown,
	"up":        menu.MoveUp,
	"right":     menu.MoveRight,
	"left":      menu.MoveLeft,
	"pgdown":    menu.NextPage,
	"pgup":      menu.PreviousPage,
}

// ResolveKey returns the action for a key given whether the menu is open.
// ActionMenu comes with the menu event to send. ActionNone means the key
// belongs to the text input.
func ResolveKey(key string, active bool) (Action, menu.Event) {
	switch key {
	case "ctrl+c":
		return ActionQuit, 0
	case "ctrl+z":
		return ActionUndo, 0
	}

	if !active {
		switch key {
		case "tab", "ctrl+space", "ctrl+@":
			return ActionActivate, 0
		case "enter":
			return ActionSubmit, 0
		}
		return ActionNone, 0
	}

	switch key {
	case "enter":
		return ActionAccept, 0
	case "esc":
		return ActionDeactivate, 0
	}
	if e, ok := MenuKeyBindings[key]; ok {
		return ActionMenu, e
	}
	return ActionNone, 0
}

// HelpText lists the host's keys.
func HelpText(active bool) string {
	if active {
		return "tab/↓ next • shift+tab/↑ prev • pgdn/pgup page • enter accept • esc close"
	}
	return "tab menu • enter submit • ctrl+z undo • ctrl+c quit"
}
