// Package terminal provides terminal utilities for the CLI binary.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size represents terminal dimensions
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal size.
// Falls back to 80x24 when stdout is not a terminal.
func GetSize() Size {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols == 0 {
		cols = 80
	}
	if err != nil || rows == 0 {
		rows = 24
	}

	return Size{
		Cols: cols,
		Rows: rows,
	}
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
