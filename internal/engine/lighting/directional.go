// Package lighting holds the scene-side light state driven by the day/night
// cycle, in a form the renderer can upload directly.
package lighting

import (
	"github.com/Faultbox/leaf-daycycle/internal/daynight"
	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

// DirectionalLight is the sun. It implements daynight.LightHandle.
type DirectionalLight struct {
	Angle          float64    // Pivot pitch in degrees
	Rotation       lmath.Quat // Pivot rotation
	Direction      lmath.Vec3 // Direction the light travels
	Color          lmath.Color
	Intensity      float32
	ShadowStrength float32
	Ambient        lmath.Color
}

// NewDirectionalLight creates a light at the horizon with no intensity.
func NewDirectionalLight() *DirectionalLight {
	l := &DirectionalLight{}
	l.SetSunRotation(0)
	return l
}

// SetSunRotation orients the pivot by a pitch in degrees.
func (l *DirectionalLight) SetSunRotation(angleDeg float64) {
	l.Angle = angleDeg
	l.Rotation = daynight.SunRotation(angleDeg)
	l.Direction = l.Rotation.Rotate(lmath.Forward).Normalize()
}

// ApplyLighting copies the smoothed values.
func (l *DirectionalLight) ApplyLighting(s daynight.LightingState) {
	l.Color = s.LightColor
	l.Intensity = s.Intensity
	l.ShadowStrength = s.ShadowStrength
	l.Ambient = s.Ambient
}

// Elevation returns the sine of the sun's height above the horizon, positive
// while the sun is up.
func (l *DirectionalLight) Elevation() float32 {
	return -l.Direction.Y
}

// ToSun returns the unit vector from the scene toward the sun.
func (l *DirectionalLight) ToSun() lmath.Vec3 {
	return l.Direction.Negate()
}

// Uniforms returns the light as flat float32 values for GPU upload.
// Format: [dx, dy, dz, r*i, g*i, b*i, ar, ag, ab, shadow]
func (l *DirectionalLight) Uniforms() [10]float32 {
	c := l.Color.Scale(l.Intensity)
	return [10]float32{
		l.Direction.X, l.Direction.Y, l.Direction.Z,
		c.R, c.G, c.B,
		l.Ambient.R, l.Ambient.G, l.Ambient.B,
		l.ShadowStrength,
	}
}
