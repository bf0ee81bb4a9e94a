package daynight

import (
	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

// SunAngle maps an hour to the sun pivot's pitch in degrees: 0 at 06:00 on
// the horizon, 90 at noon, 180 at 18:00, -90 at midnight. The schedule is
// fixed and does not follow the configured period thresholds.
func SunAngle(hour float64) float64 {
	return (hour - 6) / HoursPerDay * 360
}

// SunRotation returns the pivot rotation for a pitch in degrees.
func SunRotation(angleDeg float64) lmath.Quat {
	return lmath.QuatFromPitch(angleDeg)
}

// SunDirection returns the unit direction the light travels for a pitch in
// degrees. At noon it points straight down.
func SunDirection(angleDeg float64) lmath.Vec3 {
	return SunRotation(angleDeg).Rotate(lmath.Forward).Normalize()
}
