package math

// Lerp interpolates between a and b. The weighted form returns a exactly at
// t=0 and b exactly at t=1.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}
