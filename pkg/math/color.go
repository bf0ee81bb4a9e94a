package math

// Color is a linear RGB color with float components, nominally 0.0 to 1.0.
type Color struct {
	R float32 `yaml:"r" json:"r"`
	G float32 `yaml:"g" json:"g"`
	B float32 `yaml:"b" json:"b"`
}

// RGB creates a color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
	}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Clamp01 returns the color with every channel clamped to [0, 1].
func (c Color) Clamp01() Color {
	return Color{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B)}
}

// Bytes returns the color as 8-bit channels, clamping out of range values.
func (c Color) Bytes() (r, g, b uint8) {
	c = c.Clamp01()
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5)
}

// LerpColor interpolates each channel with Lerp.
func LerpColor(a, b Color, t float32) Color {
	return Color{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
	}
}
