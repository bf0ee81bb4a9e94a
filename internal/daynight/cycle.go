// Package daynight implements the day/night cycle: a wrapped clock, period
// classification, two-phase lighting targets with smoothing, skybox selection,
// sun orientation and a daylight signal for other simulations.
package daynight

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Fatal configuration errors returned by Start.
var (
	ErrLightUnbound     = errors.New("daynight: directional light not bound")
	ErrInvalidDayLength = errors.New("daynight: day length must be positive")
)

// Settings configures a Cycle.
type Settings struct {
	DayLengthMinutes float64
	StartHour        float64
	Thresholds       Thresholds
	Anchors          Anchors
	Skyboxes         SkyboxSet
	SmoothingRate    float64
	Smoothing        SmoothingMode
}

// DefaultSettings returns a 20 minute day starting at 06:00.
func DefaultSettings() Settings {
	return Settings{
		DayLengthMinutes: 20,
		StartHour:        6,
		Thresholds:       DefaultThresholds(),
		Anchors:          DefaultAnchors(),
		SmoothingRate:    1,
		Smoothing:        SmoothLinear,
	}
}

// Deps are the collaborators a Cycle talks to. Light is required; the rest
// may be nil.
type Deps struct {
	Light     LightHandle
	Sky       SkyRenderer
	Growth    GrowthSink
	HUD       HUDSink
	Listeners []PeriodListener
	Logger    *zap.Logger
}

// Snapshot is a copy of the cycle's observable state.
type Snapshot struct {
	TimeOfDay float64       `json:"time_of_day"`
	Formatted string        `json:"formatted"`
	Period    string        `json:"period"`
	Progress  float64       `json:"progress"`
	Daylight  float64       `json:"daylight"`
	IsDay     bool          `json:"is_day"`
	SunAngle  float64       `json:"sun_angle"`
	Skybox    string        `json:"skybox"`
	Lighting  LightingState `json:"lighting"`
}

// Cycle is the day/night engine. It is driven from a single goroutine: Update
// once per frame, SetTime between frames.
type Cycle struct {
	settings Settings
	deps     Deps
	log      *zap.Logger

	clock    *Clock
	smoother *Smoother
	skybox   *SkyboxSelector

	enabled bool
	period  Period
}

// New creates a cycle. It does not run until Start succeeds.
func New(s Settings, deps Deps) *Cycle {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cycle{
		settings: s,
		deps:     deps,
		log:      log.Named("daynight"),
		clock:    NewClock(s.DayLengthMinutes, s.StartHour),
		smoother: NewSmoother(s.SmoothingRate, s.Smoothing),
		skybox:   NewSkyboxSelector(s.Skyboxes),
	}
	c.period = s.Thresholds.Classify(c.clock.Hour())
	return c
}

// Start checks the preconditions and applies the starting state. On failure it
// logs once, leaves the cycle disabled and returns the reason.
func (c *Cycle) Start() error {
	if err := c.check(); err != nil {
		c.enabled = false
		c.log.Error("day/night cycle disabled", zap.Error(err))
		return err
	}
	c.enabled = true
	c.apply()
	c.log.Info("day/night cycle started",
		zap.String("time", c.clock.Formatted()),
		zap.Stringer("period", c.period.Kind),
		zap.Float64("day_length_min", c.settings.DayLengthMinutes),
		zap.Stringer("smoothing", c.settings.Smoothing),
	)
	return nil
}

func (c *Cycle) check() error {
	if c.deps.Light == nil {
		return ErrLightUnbound
	}
	if !(c.settings.DayLengthMinutes > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDayLength, c.settings.DayLengthMinutes)
	}
	return c.settings.Thresholds.Validate()
}

// Enabled reports whether Start succeeded.
func (c *Cycle) Enabled() bool {
	return c.enabled
}

// AddPeriodListener registers l for period changes.
func (c *Cycle) AddPeriodListener(l PeriodListener) {
	c.deps.Listeners = append(c.deps.Listeners, l)
}

// Update advances the cycle by dt real seconds. Order within a tick: clock,
// growth notification, sun orientation, lighting, skybox, period listeners,
// HUD notification. It does nothing while the cycle is disabled.
func (c *Cycle) Update(dt float64) {
	if !c.enabled {
		return
	}
	hours := c.clock.Advance(dt)
	if c.deps.Growth != nil {
		c.deps.Growth.NotifyElapsedGameHours(hours)
	}

	hour := c.clock.Hour()
	c.deps.Light.SetSunRotation(SunAngle(hour))

	p := c.settings.Thresholds.Classify(hour)
	c.deps.Light.ApplyLighting(c.smoother.Step(c.settings.Anchors.Resolve(p), dt))
	c.updateSkybox(p.Kind)
	c.setPeriod(p)

	if c.deps.HUD != nil {
		c.deps.HUD.NotifyFormattedTime(c.clock.Formatted())
	}
}

// SetTime jumps to hour (clamped to [0, 24], 24 wraps to 0) and applies the
// resulting lighting at once, bypassing smoothing.
func (c *Cycle) SetTime(hour float64) {
	c.clock.Set(hour)
	if !c.enabled {
		c.period = c.settings.Thresholds.Classify(c.clock.Hour())
		return
	}
	c.apply()
	c.log.Debug("time set", zap.String("time", c.clock.Formatted()))
}

// apply recomputes everything for the current hour and snaps the lighting.
func (c *Cycle) apply() {
	hour := c.clock.Hour()
	c.deps.Light.SetSunRotation(SunAngle(hour))
	p := c.settings.Thresholds.Classify(hour)
	c.deps.Light.ApplyLighting(c.smoother.Snap(c.settings.Anchors.Resolve(p)))
	c.updateSkybox(p.Kind)
	c.setPeriod(p)
}

func (c *Cycle) updateSkybox(kind PeriodKind) {
	asset, changed := c.skybox.Update(kind)
	if !changed {
		return
	}
	c.log.Debug("skybox changed", zap.String("asset", asset), zap.Stringer("period", kind))
	if c.deps.Sky != nil {
		c.deps.Sky.ApplySkybox(asset)
		c.deps.Sky.MarkEnvironmentDirty()
	}
}

func (c *Cycle) setPeriod(p Period) {
	prev := c.period.Kind
	c.period = p
	if prev == p.Kind {
		return
	}
	c.log.Debug("period changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", p.Kind),
		zap.String("time", c.clock.Formatted()),
	)
	for _, l := range c.deps.Listeners {
		l.OnPeriodChanged(prev, p.Kind)
	}
}

// TimeOfDay returns the current hour in [0, 24).
func (c *Cycle) TimeOfDay() float64 {
	return c.clock.Hour()
}

// FormattedTime returns the current time as HH:MM.
func (c *Cycle) FormattedTime() string {
	return c.clock.Formatted()
}

// CurrentPeriod returns the classified period with its transition progress.
func (c *Cycle) CurrentPeriod() Period {
	return c.settings.Thresholds.Classify(c.clock.Hour())
}

// DaylightAmount returns the daylight signal in [0, 1].
func (c *Cycle) DaylightAmount() float64 {
	return c.settings.Thresholds.Daylight(c.clock.Hour())
}

// IsDay reports whether the clock is between sunrise start and night start.
func (c *Cycle) IsDay() bool {
	return c.settings.Thresholds.IsDay(c.clock.Hour())
}

// SunAngle returns the current sun pitch in degrees.
func (c *Cycle) SunAngle() float64 {
	return SunAngle(c.clock.Hour())
}

// TargetLighting returns the unsmoothed lighting for the current hour.
func (c *Cycle) TargetLighting() Lighting {
	return c.settings.Anchors.Resolve(c.CurrentPeriod())
}

// Lighting returns the current smoothed lighting.
func (c *Cycle) Lighting() LightingState {
	return c.smoother.State()
}

// ActiveSkybox returns the selected background asset.
func (c *Cycle) ActiveSkybox() string {
	return c.skybox.Active()
}

// Settings returns the settings the cycle was built with.
func (c *Cycle) Settings() Settings {
	return c.settings
}

// Snapshot copies the observable state.
func (c *Cycle) Snapshot() Snapshot {
	p := c.CurrentPeriod()
	return Snapshot{
		TimeOfDay: c.clock.Hour(),
		Formatted: c.clock.Formatted(),
		Period:    p.Kind.String(),
		Progress:  p.Progress,
		Daylight:  c.DaylightAmount(),
		IsDay:     c.IsDay(),
		SunAngle:  c.SunAngle(),
		Skybox:    c.skybox.Active(),
		Lighting:  c.smoother.State(),
	}
}
