package state

// DefaultMaxMessages is the log length used when none is configured
const DefaultMaxMessages = 5

// MessageLog keeps the banner message and a short history of recent ones
type MessageLog struct {
	current  string
	history  []string
	capacity int
}

// NewMessageLog creates a log remembering up to capacity messages
func NewMessageLog(capacity int) *MessageLog {
	if capacity < 1 {
		capacity = DefaultMaxMessages
	}
	return &MessageLog{capacity: capacity}
}

// AddMessage shows msg as the banner, replacing any current one, and records it
func (l *MessageLog) AddMessage(msg string) {
	l.current = msg
	l.Record(msg)
}

// Record adds msg to the history without touching the banner
func (l *MessageLog) Record(msg string) {
	l.history = append(l.history, msg)

	// Keep only the last capacity messages
	if len(l.history) > l.capacity {
		l.history = l.history[len(l.history)-l.capacity:]
	}
}

// ClearCurrent hides the banner; history is kept
func (l *MessageLog) ClearCurrent() {
	l.current = ""
}

// Current returns the banner message, or "" when none is showing
func (l *MessageLog) Current() string {
	return l.current
}

// Messages returns a copy of the recent messages, oldest first
func (l *MessageLog) Messages() []string {
	return append([]string(nil), l.history...)
}

// Reset clears the banner and history
func (l *MessageLog) Reset() {
	l.current = ""
	l.history = nil
}
