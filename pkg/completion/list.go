package completion

import (
	"strings"

	"github.com/oakwood-commons/listmenu/internal/limiter"
)

// ListCompleter is an in-memory Completer over a fixed, ordered list of
// values. An empty line matches everything; otherwise values containing the
// line (case-insensitive) match. The returned span covers the line as it
// ends at pos.
type ListCompleter struct {
	values       []string
	descriptions map[string]string
}

// NewListCompleter creates a completer over the given values, preserving order.
func NewListCompleter(values ...string) *ListCompleter {
	return &ListCompleter{
		values:       append([]string(nil), values...),
		descriptions: make(map[string]string),
	}
}

// Describe attaches a description to a value.
func (c *ListCompleter) Describe(value, description string) *ListCompleter {
	c.descriptions[value] = description
	return c
}

// Add appends values to the end of the list.
func (c *ListCompleter) Add(values ...string) {
	c.values = append(c.values, values...)
}

func (c *ListCompleter) matches(line string) []string {
	if line == "" {
		return c.values
	}
	needle := strings.ToLower(line)
	var out []string
	for _, v := range c.values {
		if strings.Contains(strings.ToLower(v), needle) {
			out = append(out, v)
		}
	}
	return out
}

func (c *ListCompleter) suggestions(values []string, line string, pos int) []Suggestion {
	span := Span{Start: max(pos-len(line), 0), End: pos}
	out := make([]Suggestion, 0, len(values))
	for _, v := range values {
		out = append(out, Suggestion{
			Value:       v,
			Description: c.descriptions[v],
			Span:        span,
		})
	}
	return out
}

// Complete returns all matching values.
func (c *ListCompleter) Complete(line string, pos int) []Suggestion {
	return c.suggestions(c.matches(line), line, pos)
}

// PartialComplete returns a window over the matching values.
func (c *ListCompleter) PartialComplete(line string, pos, skip, take int) []Suggestion {
	matched := c.matches(line)
	start, end := limiter.Config{Offset: skip, Limit: take}.Bounds(len(matched))
	if take <= 0 {
		end = start
	}
	return c.suggestions(matched[start:end], line, pos)
}

// TotalCompletions returns the number of matching values.
func (c *ListCompleter) TotalCompletions(line string, _ int) int {
	return len(c.matches(line))
}
