package daynight

import (
	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

// Lighting is a set of light values: an anchor when it comes from
// configuration, a target when it is resolved for the current instant.
type Lighting struct {
	LightColor lmath.Color `yaml:"light_color" json:"light_color"`
	Intensity  float32     `yaml:"intensity" json:"intensity"`
	Ambient    lmath.Color `yaml:"ambient" json:"ambient"`
}

// LerpLighting interpolates every channel and the intensity.
func LerpLighting(a, b Lighting, t float32) Lighting {
	return Lighting{
		LightColor: lmath.LerpColor(a.LightColor, b.LightColor, t),
		Intensity:  lmath.Lerp(a.Intensity, b.Intensity, t),
		Ambient:    lmath.LerpColor(a.Ambient, b.Ambient, t),
	}
}

// Anchors holds one reference Lighting per period. Sunrise and Sunset are the
// peak values reached halfway through each transition.
type Anchors struct {
	Night   Lighting `yaml:"night" json:"night"`
	Sunrise Lighting `yaml:"sunrise" json:"sunrise"`
	Day     Lighting `yaml:"day" json:"day"`
	Sunset  Lighting `yaml:"sunset" json:"sunset"`
}

// DefaultAnchors returns the stock palette: cold dim night, warm orange
// sunrise, neutral day, red sunset.
func DefaultAnchors() Anchors {
	return Anchors{
		Night: Lighting{
			LightColor: lmath.Color{R: 0.25, G: 0.30, B: 0.50},
			Intensity:  0.1,
			Ambient:    lmath.Color{R: 0.05, G: 0.06, B: 0.12},
		},
		Sunrise: Lighting{
			LightColor: lmath.Color{R: 1.00, G: 0.60, B: 0.35},
			Intensity:  0.6,
			Ambient:    lmath.Color{R: 0.45, G: 0.30, B: 0.30},
		},
		Day: Lighting{
			LightColor: lmath.Color{R: 1.00, G: 0.96, B: 0.88},
			Intensity:  1.0,
			Ambient:    lmath.Color{R: 0.55, G: 0.60, B: 0.65},
		},
		Sunset: Lighting{
			LightColor: lmath.Color{R: 1.00, G: 0.45, B: 0.25},
			Intensity:  0.5,
			Ambient:    lmath.Color{R: 0.40, G: 0.25, B: 0.30},
		},
	}
}

// Resolve returns the target lighting for a classified instant. Stable periods
// return their anchor. Transitions run in two linear halves: preceding anchor
// to peak over the first half, peak to following anchor over the second, so
// the peak is hit exactly at Progress 0.5.
func (a Anchors) Resolve(p Period) Lighting {
	switch p.Kind {
	case Sunrise:
		return twoPhase(a.Night, a.Sunrise, a.Day, p.Progress)
	case Day:
		return a.Day
	case Sunset:
		return twoPhase(a.Day, a.Sunset, a.Night, p.Progress)
	default:
		return a.Night
	}
}

func twoPhase(from, peak, to Lighting, t float64) Lighting {
	if t < 0.5 {
		return LerpLighting(from, peak, float32(t*2))
	}
	return LerpLighting(peak, to, float32((t-0.5)*2))
}
