// Package terminal wraps the few terminal queries the text renderer needs.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI sequences used for in-place redraws
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Clear wipes the screen and moves the cursor home
func Clear(w io.Writer) {
	io.WriteString(w, clearScreen+cursorHome)
}

// Home moves the cursor to the top-left corner without clearing,
// so the next frame overwrites the previous one.
func Home(w io.Writer) {
	io.WriteString(w, cursorHome)
}

// HideCursor hides the cursor; ShowCursor restores it
func HideCursor(w io.Writer) { io.WriteString(w, hideCursor) }

// ShowCursor makes the cursor visible again
func ShowCursor(w io.Writer) { io.WriteString(w, showCursor) }
