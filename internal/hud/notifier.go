package hud

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultDuration is how long a toast stays up when no duration is given.
const DefaultDuration = 3.0

const maxToasts = 8

// Toast is a notification on screen.
type Toast struct {
	Message   string
	Remaining float64 // Seconds
}

// Notifier queues toast messages and expires them as time passes. Every
// message is also logged.
type Notifier struct {
	mu     sync.Mutex
	toasts []Toast
	log    *zap.Logger

	DefaultDuration float64
}

// NewNotifier creates a notifier. A nil logger discards output.
func NewNotifier(log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		toasts:          make([]Toast, 0, maxToasts),
		log:             log.Named("notify"),
		DefaultDuration: DefaultDuration,
	}
}

// Notify shows msg for the default duration.
func (n *Notifier) Notify(msg string) {
	n.Show(msg, -1)
}

// Show displays msg for duration seconds. A negative duration uses
// DefaultDuration. The oldest toast is dropped when the queue is full.
func (n *Notifier) Show(msg string, duration float64) {
	n.log.Info(msg)

	n.mu.Lock()
	defer n.mu.Unlock()
	if duration < 0 {
		duration = n.DefaultDuration
	}
	n.toasts = append(n.toasts, Toast{Message: msg, Remaining: duration})
	if len(n.toasts) > maxToasts {
		n.toasts = n.toasts[1:]
	}
}

// Advance counts down every toast by dt seconds and removes expired ones.
func (n *Notifier) Advance(dt float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	live := n.toasts[:0]
	for _, t := range n.toasts {
		t.Remaining -= dt
		if t.Remaining > 0 {
			live = append(live, t)
		}
	}
	n.toasts = live
}

// Active returns the messages still on screen, oldest first.
func (n *Notifier) Active() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.toasts))
	for i, t := range n.toasts {
		out[i] = t.Message
	}
	return out
}
