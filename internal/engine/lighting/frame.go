package lighting

import (
	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

// Frame is everything the sky pass needs for one frame.
type Frame struct {
	Zenith    lmath.Color
	Horizon   lmath.Color
	Ground    lmath.Color
	SunColor  lmath.Color
	SunX      float32 // Screen position in [-1, 1]; 0,0 is the horizon center
	SunY      float32
	SunRadius float32
}

const (
	sunArc    = 0.8
	sunRadius = 0.06
)

// ComputeFrame derives sky colors and the sun disc from the light and the
// active background. The clear color is the background tint scaled by the
// ambient level; the horizon picks up the light color as the sun gets low.
func ComputeFrame(l *DirectionalLight, s *Sky) Frame {
	ambient := max(l.Ambient.R, l.Ambient.G, l.Ambient.B)
	zenith := s.Tint().Scale(lmath.Clamp01(ambient * 1.5)).Clamp01()

	lit := l.Color.Scale(l.Intensity)
	elev := l.Elevation()
	if elev < 0 {
		elev = -elev
	}
	horizon := lmath.LerpColor(zenith, lit, 0.5*(1-elev)).Clamp01()

	toSun := l.ToSun()
	return Frame{
		Zenith:    zenith,
		Horizon:   horizon,
		Ground:    l.Ambient.Scale(0.5).Clamp01(),
		SunColor:  lit.Clamp01(),
		SunX:      toSun.Z * sunArc,
		SunY:      toSun.Y * sunArc,
		SunRadius: sunRadius,
	}
}

// SunVisible reports whether any of the disc is above the horizon.
func (f Frame) SunVisible() bool {
	return f.SunY > -f.SunRadius
}
