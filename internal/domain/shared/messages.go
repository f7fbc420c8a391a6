package shared

import (
	"fmt"
	"sync"
)

// Messenger receives player-facing messages
type Messenger interface {
	Msg(format string, args ...any)
}

// MessageLog is a Messenger that keeps every message in order
type MessageLog struct {
	mu       sync.Mutex
	messages []string
}

// NewMessageLog creates an empty MessageLog
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Msg formats and appends a message
func (l *MessageLog) Msg(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) == 0 {
		l.messages = append(l.messages, format)
		return
	}
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// Messages returns a copy of everything logged so far
func (l *MessageLog) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}

// Drain returns everything logged so far and empties the log
func (l *MessageLog) Drain() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.messages
	l.messages = nil
	return out
}

// Discard is a Messenger that drops everything
var Discard Messenger = discard{}

type discard struct{}

func (discard) Msg(string, ...any) {}
