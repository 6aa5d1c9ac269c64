package input

import (
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// DefaultHoldWindow is how long a terminal key counts as held after its last byte arrives.
// Terminals report key presses and auto-repeat but never key releases.
const DefaultHoldWindow = 150 * time.Millisecond

// TerminalReader reads keys from a raw-mode terminal and tracks which codes are held.
type TerminalReader struct {
	in         io.Reader
	holdWindow time.Duration
	now        func() time.Time

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewTerminalReader creates a reader over r (usually os.Stdin)
func NewTerminalReader(r io.Reader, holdWindow time.Duration) *TerminalReader {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &TerminalReader{
		in:         r,
		holdWindow: holdWindow,
		now:        time.Now,
		lastSeen:   make(map[string]time.Time),
	}
}

// MakeRaw puts stdin into raw mode and returns a function restoring the previous state.
func MakeRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, err
	}
	return func() {
		if err := term.Restore(fd, oldState); err != nil {
			log.Printf("Cannot restore terminal: %v", err)
		}
	}, nil
}

// Run reads until the reader fails or, once the context is cancelled, the next key arrives.
// Ctrl+C is reported as the "escape" code.
func (t *TerminalReader) Run(ctx context.Context) {
	buf := make([]byte, 16)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := t.in.Read(buf)
		if err != nil {
			return
		}
		for _, code := range decodeKeys(buf[:n]) {
			t.Press(code)
		}
	}
}

// Press marks a code as just seen
func (t *TerminalReader) Press(code string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen[code] = t.now()
}

// HeldCodes returns the codes seen within the hold window
func (t *TerminalReader) HeldCodes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	var codes []string
	for code, at := range t.lastSeen {
		if now.Sub(at) <= t.holdWindow {
			codes = append(codes, code)
		} else {
			delete(t.lastSeen, code)
		}
	}
	return codes
}

// Snapshot maps the held codes through the bindings
func (t *TerminalReader) Snapshot() Snapshot {
	return FromHeld(HeldFromCodes(t.HeldCodes()))
}

// decodeKeys splits a raw terminal read into key codes.
// Upper-case letters also report "shift" so Shift+WASD sprints.
func decodeKeys(b []byte) []string {
	var codes []string
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == 0x1b && i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O'):
			// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
			switch b[i+2] {
			case 'A':
				codes = append(codes, "arrow_up")
			case 'B':
				codes = append(codes, "arrow_down")
			case 'C':
				codes = append(codes, "arrow_right")
			case 'D':
				codes = append(codes, "arrow_left")
			}
			i += 2
		case c == 0x1b:
			codes = append(codes, "escape")
		case c == 3:
			codes = append(codes, "escape")
		case c >= 'A' && c <= 'Z':
			codes = append(codes, "shift", string(c+('a'-'A')))
		case c >= 32 && c < 127:
			codes = append(codes, string(c))
		}
	}
	return codes
}
