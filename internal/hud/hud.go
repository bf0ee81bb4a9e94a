// Package hud holds the heads-up display state fed by the simulation: the
// clock label and short-lived notifications.
package hud

import "sync"

// InitialTime is shown before the first tick.
const InitialTime = "06:00"

// HUD holds the clock label. It is safe for concurrent use so a renderer on
// another goroutine can read it.
type HUD struct {
	mu       sync.RWMutex
	time     string
	changes  int
	onChange func(string)
}

// New creates a HUD showing InitialTime.
func New() *HUD {
	return &HUD{time: InitialTime}
}

// OnChange sets a callback invoked when the label text changes.
func (h *HUD) OnChange(fn func(string)) {
	h.mu.Lock()
	h.onChange = fn
	h.mu.Unlock()
}

// NotifyFormattedTime updates the clock label.
func (h *HUD) NotifyFormattedTime(formatted string) {
	h.mu.Lock()
	if formatted == h.time {
		h.mu.Unlock()
		return
	}
	h.time = formatted
	h.changes++
	fn := h.onChange
	h.mu.Unlock()

	if fn != nil {
		fn(formatted)
	}
}

// Time returns the label text.
func (h *HUD) Time() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.time
}

// Changes returns how many times the label text changed.
func (h *HUD) Changes() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.changes
}
