package menu

import (
	"fmt"
	"strings"
)

// Event is an already classified input event sent to the menu.
type Event int

const (
	// Activate opens the menu and rebuilds the page ledger.
	Activate Event = iota
	// Deactivate closes the menu.
	Deactivate
	// Edit signals that the line buffer changed while the menu was open.
	Edit
	NextElement
	PreviousElement
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	NextPage
	PreviousPage
)

var eventNames = map[Event]string{
	Activate:        "activate",
	Deactivate:      "deactivate",
	Edit:            "edit",
	NextElement:     "next",
	PreviousElement: "previous",
	MoveUp:          "up",
	MoveDown:        "down",
	MoveLeft:        "left",
	MoveRight:       "right",
	NextPage:        "next-page",
	PreviousPage:    "previous-page",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// ParseEvent returns the event with the given name, as printed by String.
func ParseEvent(name string) (Event, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for e, n := range eventNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown menu event %q", name)
}

// EventNames returns the names accepted by ParseEvent in declaration order.
func EventNames() []string {
	names := make([]string, 0, len(eventNames))
	for e := Activate; e <= PreviousPage; e++ {
		names = append(names, eventNames[e])
	}
	return names
}

// moveNext and movePrevious group the equivalent directional events.
func (e Event) moveNext() bool {
	return e == NextElement || e == MoveDown || e == MoveRight
}

func (e Event) movePrevious() bool {
	return e == PreviousElement || e == MoveUp || e == MoveLeft
}
