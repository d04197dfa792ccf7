package usagefmt

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the rendering width used when the terminal size cannot
// be determined.
const DefaultWidth = 78

// TerminalWidth returns the column count of the terminal attached to
// stdout, or DefaultWidth when stdout is not a terminal.
func TerminalWidth() int {
	return terminalWidth(int(os.Stdout.Fd()))
}

func terminalWidth(fd int) int {
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
