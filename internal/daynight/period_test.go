package daynight

import (
	"errors"
	"math"
	"testing"
)

func TestClassifyDefaults(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		hour     float64
		kind     PeriodKind
		progress float64
	}{
		{0, Night, 0},
		{4.99, Night, 0},
		{5, Sunrise, 0},
		{5.5, Sunrise, 0.5},
		{5.75, Sunrise, 0.75},
		{6, Day, 0},
		{12, Day, 0},
		{16.999, Day, 0},
		{17, Sunset, 0},
		{17.25, Sunset, 0.25},
		{18, Night, 0},
		{23.999, Night, 0},
	}
	for _, tt := range tests {
		got := th.Classify(tt.hour)
		if got.Kind != tt.kind {
			t.Errorf("Classify(%v): expected %v, got %v", tt.hour, tt.kind, got.Kind)
			continue
		}
		if math.Abs(got.Progress-tt.progress) > 1e-9 {
			t.Errorf("Classify(%v) progress: expected %v, got %v", tt.hour, tt.progress, got.Progress)
		}
	}
}

func TestClassifyPartitionsDay(t *testing.T) {
	th := DefaultThresholds()
	counts := map[PeriodKind]int{}
	for i := 0; i < 24*600; i++ {
		hour := float64(i) / 600
		p := th.Classify(hour)
		switch p.Kind {
		case Night, Sunrise, Day, Sunset:
			counts[p.Kind]++
		default:
			t.Fatalf("Classify(%v) returned unknown kind %v", hour, p.Kind)
		}
		if p.Progress < 0 || p.Progress > 1 {
			t.Fatalf("Classify(%v) progress %v out of [0,1]", hour, p.Progress)
		}
	}
	// 11h day, 1h each transition, 11h night
	want := map[PeriodKind]int{Night: 11 * 600, Sunrise: 600, Day: 11 * 600, Sunset: 600}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%v samples: expected %d, got %d", k, n, counts[k])
		}
	}
}

func TestClassifyGaps(t *testing.T) {
	th := Thresholds{SunriseStart: 5, SunriseEnd: 6, DayStart: 7, SunsetStart: 17, SunsetEnd: 18, NightStart: 19}
	if got := th.Classify(6.5).Kind; got != Day {
		t.Errorf("gap after sunrise: expected Day, got %v", got)
	}
	if got := th.Classify(18.5).Kind; got != Night {
		t.Errorf("gap after sunset: expected Night, got %v", got)
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := []Thresholds{
		{SunriseStart: 6, SunriseEnd: 5, DayStart: 6, SunsetStart: 17, SunsetEnd: 18, NightStart: 18},
		{SunriseStart: 5, SunriseEnd: 6, DayStart: 18, SunsetStart: 17, SunsetEnd: 18, NightStart: 18},
		{SunriseStart: 5, SunriseEnd: 6, DayStart: 6, SunsetStart: 17, SunsetEnd: 18, NightStart: 25},
		{SunriseStart: -1, SunriseEnd: 6, DayStart: 6, SunsetStart: 17, SunsetEnd: 18, NightStart: 18},
	}
	for i, th := range bad {
		if err := th.Validate(); !errors.Is(err, ErrInvalidThresholds) {
			t.Errorf("case %d: expected ErrInvalidThresholds, got %v", i, err)
		}
	}
}

func TestDaylight(t *testing.T) {
	th := DefaultThresholds()
	for _, h := range []float64{0, 3, 4.999, 18, 22} {
		if got := th.Daylight(h); got != 0 {
			t.Errorf("Daylight(%v): expected 0 at night, got %v", h, got)
		}
	}
	for _, h := range []float64{6, 9, 12, 16.9} {
		if got := th.Daylight(h); got != 1 {
			t.Errorf("Daylight(%v): expected 1 during day, got %v", h, got)
		}
	}
	if got := th.Daylight(5.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Daylight(5.5): expected 0.5, got %v", got)
	}
	if got := th.Daylight(17.25); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Daylight(17.25): expected 0.75, got %v", got)
	}
}

func TestDaylightMonotonicThroughTransitions(t *testing.T) {
	th := DefaultThresholds()
	prev := th.Daylight(th.SunriseStart)
	for h := th.SunriseStart; h < th.SunriseEnd; h += 0.01 {
		d := th.Daylight(h)
		if d < prev {
			t.Fatalf("daylight decreased during sunrise at %v: %v < %v", h, d, prev)
		}
		prev = d
	}
	prev = th.Daylight(th.SunsetStart)
	for h := th.SunsetStart; h < th.SunsetEnd; h += 0.01 {
		d := th.Daylight(h)
		if d > prev {
			t.Fatalf("daylight increased during sunset at %v: %v > %v", h, d, prev)
		}
		prev = d
	}
}

func TestIsDay(t *testing.T) {
	th := DefaultThresholds()
	if th.IsDay(4.9) || !th.IsDay(5) || !th.IsDay(17.9) || th.IsDay(18) {
		t.Error("IsDay should cover [sunrise_start, night_start)")
	}
}

func TestPeriodKindString(t *testing.T) {
	names := map[PeriodKind]string{Night: "Night", Sunrise: "Sunrise", Day: "Day", Sunset: "Sunset"}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("expected %q, got %q", want, k.String())
		}
	}
}
