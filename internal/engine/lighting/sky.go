package lighting

import (
	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

// DefaultSkyTint is used for assets without a configured tint.
var DefaultSkyTint = lmath.Color{R: 0.1, G: 0.1, B: 0.15}

// Sky records the active background. It implements daynight.SkyRenderer.
type Sky struct {
	tints map[string]lmath.Color
	asset string
	dirty bool
	swaps int
}

// NewSky creates a sky with per-asset tints used for the clear color.
func NewSky(tints map[string]lmath.Color) *Sky {
	if tints == nil {
		tints = map[string]lmath.Color{}
	}
	return &Sky{tints: tints}
}

// ApplySkybox makes asset the active background.
func (s *Sky) ApplySkybox(asset string) {
	s.asset = asset
	s.swaps++
}

// MarkEnvironmentDirty flags environment lighting for recomputation.
func (s *Sky) MarkEnvironmentDirty() {
	s.dirty = true
}

// ConsumeDirty returns and clears the dirty flag.
func (s *Sky) ConsumeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Asset returns the active background asset.
func (s *Sky) Asset() string {
	return s.asset
}

// Swaps returns how many times the background changed.
func (s *Sky) Swaps() int {
	return s.swaps
}

// Tint returns the clear color for the active asset.
func (s *Sky) Tint() lmath.Color {
	if c, ok := s.tints[s.asset]; ok {
		return c
	}
	return DefaultSkyTint
}
