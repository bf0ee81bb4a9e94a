package daynight

import (
	"fmt"
	"math"
	"strings"

	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

// SmoothingMode selects how the Smoother turns rate and elapsed time into a
// blend factor.
type SmoothingMode int

const (
	// SmoothLinear blends by rate*dt each step, clamped to 1. Convergence
	// speed depends on the update frequency.
	SmoothLinear SmoothingMode = iota
	// SmoothExponential blends by 1-exp(-rate*dt), independent of frame rate.
	SmoothExponential
)

// String returns the config spelling of the mode.
func (m SmoothingMode) String() string {
	if m == SmoothExponential {
		return "exponential"
	}
	return "linear"
}

// ParseSmoothingMode accepts "linear" (or empty) and "exponential".
func ParseSmoothingMode(s string) (SmoothingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return SmoothLinear, nil
	case "exponential":
		return SmoothExponential, nil
	default:
		return SmoothLinear, fmt.Errorf("unknown smoothing mode %q", s)
	}
}

// LightingState is the lighting actually applied to the scene.
type LightingState struct {
	LightColor     lmath.Color `json:"light_color"`
	Intensity      float32     `json:"intensity"`
	ShadowStrength float32     `json:"shadow_strength"`
	Ambient        lmath.Color `json:"ambient"`
}

// Smoother eases the current lighting toward a target.
type Smoother struct {
	rate  float64
	mode  SmoothingMode
	state LightingState
}

// NewSmoother creates a smoother with the given rate per second.
func NewSmoother(rate float64, mode SmoothingMode) *Smoother {
	return &Smoother{rate: rate, mode: mode}
}

// Step moves the current values toward target by one update of dt seconds.
func (s *Smoother) Step(target Lighting, dt float64) LightingState {
	f := s.factor(dt)
	s.state.LightColor = lmath.LerpColor(s.state.LightColor, target.LightColor, f)
	s.state.Intensity = lmath.Lerp(s.state.Intensity, target.Intensity, f)
	s.state.Ambient = lmath.LerpColor(s.state.Ambient, target.Ambient, f)
	s.state.ShadowStrength = lmath.Clamp01(s.state.Intensity)
	return s.state
}

// Snap sets the current values to target with no easing.
func (s *Smoother) Snap(target Lighting) LightingState {
	s.state = LightingState{
		LightColor:     target.LightColor,
		Intensity:      target.Intensity,
		ShadowStrength: lmath.Clamp01(target.Intensity),
		Ambient:        target.Ambient,
	}
	return s.state
}

// State returns the current values.
func (s *Smoother) State() LightingState {
	return s.state
}

func (s *Smoother) factor(dt float64) float32 {
	if dt <= 0 || s.rate <= 0 {
		return 0
	}
	if s.mode == SmoothExponential {
		return float32(1 - math.Exp(-s.rate*dt))
	}
	return lmath.Clamp01(float32(s.rate * dt))
}
