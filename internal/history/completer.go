package history

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/listmenu/internal/cel"
	"github.com/oakwood-commons/listmenu/pkg/completion"
)

// Completer offers history entries newest first. An empty line matches every
// entry; otherwise entries containing the line (case-insensitive) match. An
// optional CEL predicate further restricts the entries offered.
type Completer struct {
	store  *Store
	filter *cel.Predicate
	log    logr.Logger
}

// CompleterOption configures a Completer.
type CompleterOption func(*Completer)

// WithFilter restricts suggestions to entries the predicate accepts.
func WithFilter(p *cel.Predicate) CompleterOption {
	return func(c *Completer) {
		c.filter = p
	}
}

// WithLogger sets the logger used for store and filter errors.
func WithLogger(log logr.Logger) CompleterOption {
	return func(c *Completer) {
		c.log = log
	}
}

// NewCompleter creates a completer over store.
func NewCompleter(store *Store, opts ...CompleterOption) *Completer {
	c := &Completer{store: store, log: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// match walks matching entries newest first until fn returns false.
func (c *Completer) match(line string, fn func(Entry) bool) {
	needle := strings.ToLower(line)
	filterFailed := false
	err := c.store.walkNewest(func(e Entry) bool {
		if needle != "" && !strings.Contains(strings.ToLower(e.Text), needle) {
			return true
		}
		if c.filter != nil {
			ok, err := c.filter.Match(e.Text, "", e.Seq)
			if err != nil && !filterFailed {
				filterFailed = true
				c.log.Error(err, "history filter failed", "filter", c.filter.String(), "seq", e.Seq)
			}
			if !ok {
				return true
			}
		}
		return fn(e)
	})
	if err != nil {
		c.log.Error(err, "failed to read history")
	}
}

func suggestion(e Entry, line string, pos int) completion.Suggestion {
	return completion.Suggestion{
		Value: e.Text,
		Span:  completion.Span{Start: max(pos-len(line), 0), End: pos},
	}
}

// Complete returns every matching entry.
func (c *Completer) Complete(line string, pos int) []completion.Suggestion {
	var out []completion.Suggestion
	c.match(line, func(e Entry) bool {
		out = append(out, suggestion(e, line, pos))
		return true
	})
	return out
}

// PartialComplete returns at most take matching entries after skipping skip.
func (c *Completer) PartialComplete(line string, pos, skip, take int) []completion.Suggestion {
	if take <= 0 {
		return nil
	}
	skip = max(skip, 0)
	out := make([]completion.Suggestion, 0, take)
	seen := 0
	c.match(line, func(e Entry) bool {
		seen++
		if seen <= skip {
			return true
		}
		out = append(out, suggestion(e, line, pos))
		return len(out) < take
	})
	return out
}

// TotalCompletions counts matching entries. An empty query without a filter
// reads the count from the store instead of walking it.
func (c *Completer) TotalCompletions(line string, _ int) int {
	if line == "" && c.filter == nil {
		n, err := c.store.Len()
		if err == nil {
			return n
		}
		c.log.Error(err, "failed to count history")
	}
	n := 0
	c.match(line, func(Entry) bool {
		n++
		return true
	})
	return n
}
