//revive:disable:exported
package completion

// Completer defines the interface for completion sources queried by a menu.
// Implementations decide matching and ranking; the menu only pages through
// whatever they return.
type Completer interface {
	// Complete returns every suggestion for the line at the given position.
	Complete(line string, pos int) []Suggestion

	// PartialComplete returns a window of the suggestions for the line,
	// skipping the first skip values and returning at most take values.
	PartialComplete(line string, pos, skip, take int) []Suggestion

	// TotalCompletions returns the number of suggestions Complete would return.
	TotalCompletions(line string, pos int) int
}

// Span is a half-open byte range [Start, End) in the line buffer.
type Span struct {
	Start int
	End   int
}

// Suggestion represents a single completion candidate.
type Suggestion struct {
	Value            string // Replacement text
	Description      string // Optional description; empty means none
	Span             Span   // Range of the buffer replaced on accept
	AppendWhitespace bool   // Append a space after Value on accept
}

//revive:enable:exported

// HasDescription reports whether the suggestion carries a description.
func (s Suggestion) HasDescription() bool {
	return s.Description != ""
}
