package runner

import "sync"

// Speed limits for SetSpeed.
const (
	MinSpeed = 0.125
	MaxSpeed = 64
)

// Control holds the time multiplier and pause state shared by a driver and
// its input handlers. It is safe for concurrent use.
type Control struct {
	mu     sync.Mutex
	speed  float64
	paused bool
}

// NewControl returns a running control at normal speed.
func NewControl() *Control {
	return &Control{speed: 1}
}

// Apply scales a real elapsed time by the current speed. It returns 0 while
// paused.
func (c *Control) Apply(dt float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused || dt <= 0 {
		return 0
	}
	return dt * c.speed
}

// SetSpeed sets the multiplier, clamped to [MinSpeed, MaxSpeed].
func (c *Control) SetSpeed(speed float64) float64 {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	c.mu.Lock()
	c.speed = speed
	c.mu.Unlock()
	return speed
}

// Faster doubles the speed.
func (c *Control) Faster() float64 {
	return c.SetSpeed(c.Speed() * 2)
}

// Slower halves the speed.
func (c *Control) Slower() float64 {
	return c.SetSpeed(c.Speed() / 2)
}

// Speed returns the current multiplier.
func (c *Control) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// SetPaused pauses or resumes.
func (c *Control) SetPaused(paused bool) {
	c.mu.Lock()
	c.paused = paused
	c.mu.Unlock()
}

// TogglePause flips the pause state and returns the new one.
func (c *Control) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether time is stopped.
func (c *Control) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
