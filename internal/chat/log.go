package chat

import (
	"sync"

	"vibecheck/internal/types"
)

// Log is the insertion-ordered conversation log. Messages are immutable once
// appended; the log only grows or is cleared wholesale. A mutex guards the
// slice because concurrent Generate calls append in resolution order.
type Log struct {
	mu       sync.Mutex
	messages []types.Message
}

// NewLog returns an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a message to the end of the log.
func (l *Log) Append(msg types.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

// All returns a copy of the log in insertion order.
func (l *Log) All() []types.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of messages.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// Clear removes every message.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
}

// LatestAssistant returns the most recent assistant message, or false when
// none exists. The session tracker derives its state from this message.
func (l *Log) LatestAssistant() (types.Message, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Role == types.RoleAssistant {
			return l.messages[i], true
		}
	}
	return types.Message{}, false
}
