package ui

import (
	"os"

	"golang.org/x/term"

	"github.com/oakwood-commons/listmenu/pkg/menu"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// TerminalScreen returns the size of the terminal behind f, falling back to
// 80x24. Non-zero width or height override the detected values.
func TerminalScreen(f *os.File, width, height int) menu.Screen {
	w, h := width, height
	if (w <= 0 || h <= 0) && f != nil {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if w <= 0 {
				w = tw
			}
			if h <= 0 {
				h = th
			}
		}
	}
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return menu.Screen{Width: w, Height: h}
}
