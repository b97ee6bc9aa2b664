package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	defaultWidth = 80
	clearScreen  = "\033[H\033[2J"
)

// IsTerminal reports whether w writes to an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or defaultWidth when w is
// not a terminal or its size is unknown
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
