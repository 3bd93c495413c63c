package menu

import (
	"fmt"

	"github.com/oakwood-commons/listmenu/internal/editor"
	"github.com/oakwood-commons/listmenu/pkg/completion"
)

// recordingCompleter wraps a completer and remembers the last window asked for.
type recordingCompleter struct {
	completion.Completer
	lastSkip, lastTake int
	lastLine           string
	partialCalls       int
	completeCalls      int
}

func (r *recordingCompleter) PartialComplete(line string, pos, skip, take int) []completion.Suggestion {
	r.partialCalls++
	r.lastLine, r.lastSkip, r.lastTake = line, skip, take
	return r.Completer.PartialComplete(line, pos, skip, take)
}

func (r *recordingCompleter) Complete(line string, pos int) []completion.Suggestion {
	r.completeCalls++
	r.lastLine = line
	return r.Completer.Complete(line, pos)
}

// fixedCompleter always returns the same suggestions.
type fixedCompleter []completion.Suggestion

func (f fixedCompleter) Complete(string, int) []completion.Suggestion { return f }

func (f fixedCompleter) PartialComplete(_ string, _ int, skip, take int) []completion.Suggestion {
	start := min(skip, len(f))
	end := min(start+take, len(f))
	return f[start:end]
}

func (f fixedCompleter) TotalCompletions(string, int) int { return len(f) }

func items(n int) *completion.ListCompleter {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("item%02d", i)
	}
	return completion.NewListCompleter(values...)
}

// harness drives a menu the way a host editor loop does.
type harness struct {
	menu      *ListMenu
	buf       *editor.LineBuffer
	completer completion.Completer
	screen    Screen
}

func newHarness(c completion.Completer, screen Screen, opts ...Option) *harness {
	return &harness{
		menu:      New(opts...),
		buf:       editor.New(""),
		completer: c,
		screen:    screen,
	}
}

func (h *harness) send(events ...Event) {
	for _, e := range events {
		h.menu.MenuEvent(e)
		h.menu.UpdateWorkingDetails(h.buf, h.completer, h.screen)
	}
}

func (h *harness) typeText(s string) {
	h.buf.InsertString(s)
	h.send(Edit)
}

func (h *harness) plain() string {
	return h.menu.MenuString(0, false)
}
