package daynight

import (
	"errors"
	"fmt"
)

// HoursPerDay is the length of one cycle in game hours.
const HoursPerDay = 24.0

// ErrInvalidThresholds reports a threshold set that violates the ordering
// sunriseStart <= sunriseEnd <= dayStart <= sunsetStart <= sunsetEnd <= nightStart <= 24.
var ErrInvalidThresholds = errors.New("daynight: invalid period thresholds")

// PeriodKind names one part of the day.
type PeriodKind int

const (
	Night PeriodKind = iota
	Sunrise
	Day
	Sunset
)

// String returns the period name.
func (k PeriodKind) String() string {
	switch k {
	case Night:
		return "Night"
	case Sunrise:
		return "Sunrise"
	case Day:
		return "Day"
	case Sunset:
		return "Sunset"
	default:
		return fmt.Sprintf("PeriodKind(%d)", int(k))
	}
}

// IsTransition reports whether the period blends between two stable periods.
func (k PeriodKind) IsTransition() bool {
	return k == Sunrise || k == Sunset
}

// Period is a classified instant. Progress is the normalized position inside
// a Sunrise or Sunset window and is zero for Night and Day.
type Period struct {
	Kind     PeriodKind
	Progress float64
}

// Thresholds are the hour boundaries of the four periods. Night covers
// [NightStart, 24) and wraps around to [0, SunriseStart).
type Thresholds struct {
	SunriseStart float64 `yaml:"sunrise_start" json:"sunrise_start"`
	SunriseEnd   float64 `yaml:"sunrise_end" json:"sunrise_end"`
	DayStart     float64 `yaml:"day_start" json:"day_start"`
	SunsetStart  float64 `yaml:"sunset_start" json:"sunset_start"`
	SunsetEnd    float64 `yaml:"sunset_end" json:"sunset_end"`
	NightStart   float64 `yaml:"night_start" json:"night_start"`
}

// DefaultThresholds returns the stock schedule: sunrise 5-6, day 6-17,
// sunset 17-18, night from 18.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SunriseStart: 5,
		SunriseEnd:   6,
		DayStart:     6,
		SunsetStart:  17,
		SunsetEnd:    18,
		NightStart:   18,
	}
}

// Validate checks range and ordering.
func (th Thresholds) Validate() error {
	bounds := []struct {
		name string
		v    float64
	}{
		{"sunrise_start", th.SunriseStart},
		{"sunrise_end", th.SunriseEnd},
		{"day_start", th.DayStart},
		{"sunset_start", th.SunsetStart},
		{"sunset_end", th.SunsetEnd},
		{"night_start", th.NightStart},
	}
	for i, b := range bounds {
		if b.v < 0 || b.v > HoursPerDay {
			return fmt.Errorf("%w: %s=%v outside [0, 24]", ErrInvalidThresholds, b.name, b.v)
		}
		if i > 0 && b.v < bounds[i-1].v {
			return fmt.Errorf("%w: %s=%v before %s=%v",
				ErrInvalidThresholds, b.name, b.v, bounds[i-1].name, bounds[i-1].v)
		}
	}
	return nil
}

// Classify maps an hour in [0, 24) to its period. Comparisons are half-open so
// every hour lands in exactly one period. A gap between SunriseEnd and DayStart
// counts as Day, a gap between SunsetEnd and NightStart counts as Night.
func (th Thresholds) Classify(hour float64) Period {
	switch {
	case hour >= th.NightStart || hour < th.SunriseStart:
		return Period{Kind: Night}
	case hour < th.SunriseEnd:
		return Period{
			Kind:     Sunrise,
			Progress: (hour - th.SunriseStart) / (th.SunriseEnd - th.SunriseStart),
		}
	case hour < th.SunsetStart:
		return Period{Kind: Day}
	case hour < th.SunsetEnd:
		return Period{
			Kind:     Sunset,
			Progress: (hour - th.SunsetStart) / (th.SunsetEnd - th.SunsetStart),
		}
	default:
		return Period{Kind: Night}
	}
}

// Daylight returns 0 at night, 1 during the day and a linear ramp through
// the transitions (rising at sunrise, falling at sunset).
func (th Thresholds) Daylight(hour float64) float64 {
	p := th.Classify(hour)
	switch p.Kind {
	case Sunrise:
		return p.Progress
	case Day:
		return 1
	case Sunset:
		return 1 - p.Progress
	default:
		return 0
	}
}

// IsDay reports whether hour falls between the start of sunrise and the start
// of night.
func (th Thresholds) IsDay(hour float64) bool {
	return hour >= th.SunriseStart && hour < th.NightStart
}
