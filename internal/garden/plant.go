// Package garden grows plants on game time handed out by the day/night cycle.
package garden

import (
	"errors"
	"fmt"
)

// ErrNoStages is returned for a spec without growth stages.
var ErrNoStages = errors.New("garden: plant needs at least one stage")

// Notifier receives player-facing messages.
type Notifier interface {
	Notify(msg string)
}

// PlantSpec describes a plant type. Durations are in game hours.
type PlantSpec struct {
	Name          string    `yaml:"name"`
	Stages        []float64 `yaml:"stages"` // Hours to spend in each stage; the last stage is mature
	WaterHours    float64   `yaml:"water_hours"`
	DroughtHours  float64   `yaml:"drought_hours"` // Hours thirsty before death
	NightBlooming bool      `yaml:"night_blooming"`
}

// Validate checks the spec.
func (s PlantSpec) Validate() error {
	if len(s.Stages) == 0 {
		return fmt.Errorf("%w: %s", ErrNoStages, s.Name)
	}
	for i, d := range s.Stages {
		if d < 0 {
			return fmt.Errorf("garden: %s stage %d has negative duration", s.Name, i)
		}
	}
	if s.WaterHours <= 0 || s.DroughtHours < 0 {
		return fmt.Errorf("garden: %s has invalid water settings", s.Name)
	}
	return nil
}

// Plant is one growing plant.
type Plant struct {
	spec   PlantSpec
	notify Notifier

	stage      int
	stageHours float64
	water      float64 // Hours until thirsty; negative while in drought
	thirsty    bool
	dead       bool
}

// NewPlant creates a freshly watered plant in its first stage.
func NewPlant(spec PlantSpec, notify Notifier) (*Plant, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Plant{
		spec:   spec,
		notify: notify,
		water:  spec.WaterHours,
	}, nil
}

// Advance grows the plant by hours of game time. daylight is the current
// daylight amount in [0, 1]: night-blooming plants grow while it is below 1,
// others while it is above 0.
func (p *Plant) Advance(hours, daylight float64) {
	if p.dead || hours <= 0 {
		return
	}

	p.water -= hours
	if p.water <= 0 {
		if !p.thirsty {
			p.thirsty = true
			p.say("%s needs water!", p.spec.Name)
		}
		if p.water <= -p.spec.DroughtHours {
			p.dead = true
			p.say("%s has died.", p.spec.Name)
			return
		}
	}

	if p.thirsty || !p.canGrow(daylight) || p.Mature() {
		return
	}
	p.stageHours += hours
	for !p.Mature() && p.stageHours >= p.spec.Stages[p.stage] {
		p.stageHours -= p.spec.Stages[p.stage]
		p.stage++
		p.say("%s grew!", p.spec.Name)
	}
	if p.Mature() {
		p.stageHours = 0
	}
}

func (p *Plant) canGrow(daylight float64) bool {
	if p.spec.NightBlooming {
		return daylight < 1
	}
	return daylight > 0
}

// Water refills the plant. It reports false for a dead plant.
func (p *Plant) Water() bool {
	if p.dead {
		return false
	}
	p.water = p.spec.WaterHours
	p.thirsty = false
	p.say("%s watered.", p.spec.Name)
	return true
}

func (p *Plant) say(format string, args ...any) {
	if p.notify != nil {
		p.notify.Notify(fmt.Sprintf(format, args...))
	}
}

// Name returns the plant's name.
func (p *Plant) Name() string { return p.spec.Name }

// Stage returns the current stage index.
func (p *Plant) Stage() int { return p.stage }

// Mature reports whether the plant reached its last stage.
func (p *Plant) Mature() bool { return p.stage >= len(p.spec.Stages)-1 }

// Thirsty reports whether the plant needs water.
func (p *Plant) Thirsty() bool { return p.thirsty }

// Dead reports whether the plant died of drought.
func (p *Plant) Dead() bool { return p.dead }
