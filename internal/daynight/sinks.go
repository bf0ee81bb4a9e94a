package daynight

// LightHandle is the directional light the cycle drives.
type LightHandle interface {
	// SetSunRotation orients the light pivot by a pitch in degrees.
	SetSunRotation(angleDeg float64)
	// ApplyLighting pushes the current smoothed values to the light.
	ApplyLighting(state LightingState)
}

// SkyRenderer receives background changes.
type SkyRenderer interface {
	ApplySkybox(asset string)
	// MarkEnvironmentDirty asks for environment lighting to be recomputed
	// after a background change.
	MarkEnvironmentDirty()
}

// GrowthSink receives the game hours that passed each tick.
type GrowthSink interface {
	NotifyElapsedGameHours(hours float64)
}

// HUDSink receives the formatted clock each tick.
type HUDSink interface {
	NotifyFormattedTime(formatted string)
}

// PeriodListener is told when the classified period changes.
type PeriodListener interface {
	OnPeriodChanged(from, to PeriodKind)
}

// PeriodListenerFunc adapts a function to PeriodListener.
type PeriodListenerFunc func(from, to PeriodKind)

// OnPeriodChanged calls f(from, to).
func (f PeriodListenerFunc) OnPeriodChanged(from, to PeriodKind) {
	f(from, to)
}
