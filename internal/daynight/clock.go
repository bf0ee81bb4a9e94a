package daynight

import (
	"fmt"
	"math"
)

// minuteEpsilon absorbs float error when an hour built from h + m/60 is
// turned back into whole minutes.
const minuteEpsilon = 1e-9

// TimeScale returns game hours per real second for a day lasting
// dayLengthMinutes real minutes.
func TimeScale(dayLengthMinutes float64) float64 {
	return HoursPerDay / (dayLengthMinutes * 60)
}

// Clock holds the wrapped time of day.
type Clock struct {
	hour  float64
	scale float64
}

// NewClock creates a clock starting at startHour, which is clamped into the day.
func NewClock(dayLengthMinutes, startHour float64) *Clock {
	c := &Clock{scale: TimeScale(dayLengthMinutes)}
	c.Set(startHour)
	return c
}

// Advance moves the clock forward by elapsedSeconds of real time and returns
// the game hours that passed. Negative input is treated as zero.
func (c *Clock) Advance(elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	hours := elapsedSeconds * c.scale
	c.hour += hours
	if c.hour >= HoursPerDay {
		// Equal to hour-24 for a single wrap, and still in range for larger steps.
		c.hour = math.Mod(c.hour, HoursPerDay)
	}
	return hours
}

// Set clamps hour to [0, 24] and stores it; 24 wraps to midnight.
func (c *Clock) Set(hour float64) {
	c.hour = ClampHour(hour)
}

// Hour returns the time of day in [0, 24).
func (c *Clock) Hour() float64 {
	return c.hour
}

// Scale returns game hours per real second.
func (c *Clock) Scale() float64 {
	return c.scale
}

// Formatted returns the time of day as HH:MM.
func (c *Clock) Formatted() string {
	return FormatHour(c.hour)
}

// ClampHour limits hour to [0, 24] and maps 24 (and NaN) to 0.
func ClampHour(hour float64) float64 {
	switch {
	case math.IsNaN(hour), hour < 0:
		return 0
	case hour >= HoursPerDay:
		return 0
	default:
		return hour
	}
}

// FormatHour renders an hour in [0, 24) as zero-padded HH:MM.
func FormatHour(hour float64) string {
	total := int(math.Floor(hour*60 + minuteEpsilon))
	if total < 0 {
		total = 0
	}
	h := (total / 60) % 24
	m := total % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
