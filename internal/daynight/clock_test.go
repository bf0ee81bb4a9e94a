package daynight

import (
	"fmt"
	"math"
	"testing"
)

func TestTimeScale(t *testing.T) {
	if got := TimeScale(20); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("TimeScale(20): expected 0.02, got %v", got)
	}
}

func TestClockWrapStaysInRange(t *testing.T) {
	c := NewClock(1, 23)
	steps := []float64{0, 0.016, 0.5, 2.5, 7, 59.9, 60, 125, 0.0001}
	for i := 0; i < 2000; i++ {
		c.Advance(steps[i%len(steps)])
		if h := c.Hour(); h < 0 || h >= 24 {
			t.Fatalf("step %d: hour %v out of [0,24)", i, h)
		}
	}
}

func TestClockAdvanceReturnsGameHours(t *testing.T) {
	c := NewClock(20, 6)
	got := c.Advance(60)
	if math.Abs(got-1.2) > 1e-9 {
		t.Errorf("expected 1.2 game hours for 60s, got %v", got)
	}
	if math.Abs(c.Hour()-7.2) > 1e-9 {
		t.Errorf("expected hour 7.2, got %v", c.Hour())
	}
	if got := c.Advance(-5); got != 0 {
		t.Errorf("negative elapsed should advance 0, got %v", got)
	}
}

func TestClockPeriodicityExact(t *testing.T) {
	// 0.4 minute days give one game hour per real second.
	c := NewClock(0.4, 6)
	for i := 0; i < 96; i++ {
		c.Advance(0.25)
	}
	if c.Hour() != 6 {
		t.Errorf("expected to return to 6 after a full day, got %v", c.Hour())
	}
}

func TestClockPeriodicityFrameSteps(t *testing.T) {
	c := NewClock(20, 13.5)
	frames := 20 * 60 * 50
	for i := 0; i < frames; i++ {
		c.Advance(1.0 / 50)
	}
	if math.Abs(c.Hour()-13.5) > 1e-6 {
		t.Errorf("expected to return to 13.5 after a full day, got %v", c.Hour())
	}
}

func TestClockSetClamps(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-3, 0},
		{0, 0},
		{12.5, 12.5},
		{24, 0},
		{30, 0},
		{math.NaN(), 0},
	}
	c := NewClock(20, 0)
	for _, tt := range tests {
		c.Set(tt.in)
		if c.Hour() != tt.want {
			t.Errorf("Set(%v): expected %v, got %v", tt.in, tt.want, c.Hour())
		}
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour float64
		want string
	}{
		{0, "00:00"},
		{6, "06:00"},
		{6.5, "06:30"},
		{13.999, "13:59"},
		{23.99999, "23:59"},
	}
	for _, tt := range tests {
		if got := FormatHour(tt.hour); got != tt.want {
			t.Errorf("FormatHour(%v): expected %s, got %s", tt.hour, tt.want, got)
		}
	}
}

func TestFormatHourRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			hour := float64(h) + float64(m)/60
			want := fmt.Sprintf("%02d:%02d", h, m)
			if got := FormatHour(hour); got != want {
				t.Fatalf("FormatHour(%v): expected %s, got %s", hour, want, got)
			}
		}
	}
}
