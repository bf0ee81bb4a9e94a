package garden

import (
	"errors"
	"slices"
	"testing"
)

type messages []string

func (m *messages) Notify(msg string) {
	*m = append(*m, msg)
}

type fixedDaylight float64

func (d fixedDaylight) DaylightAmount() float64 { return float64(d) }

func fern() PlantSpec {
	return PlantSpec{
		Name:         "Fern",
		Stages:       []float64{2, 3, 0},
		WaterHours:   10,
		DroughtHours: 4,
	}
}

func TestPlantSpecValidate(t *testing.T) {
	if _, err := NewPlant(PlantSpec{Name: "Empty", WaterHours: 1}, nil); !errors.Is(err, ErrNoStages) {
		t.Errorf("expected ErrNoStages, got %v", err)
	}
	bad := fern()
	bad.WaterHours = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero water hours")
	}
}

func TestPlantGrowsThroughStages(t *testing.T) {
	var msgs messages
	p, err := NewPlant(fern(), &msgs)
	if err != nil {
		t.Fatalf("NewPlant: %v", err)
	}

	p.Advance(1.5, 1)
	if p.Stage() != 0 {
		t.Errorf("expected stage 0, got %d", p.Stage())
	}
	p.Advance(1, 1)
	if p.Stage() != 1 {
		t.Errorf("expected stage 1, got %d", p.Stage())
	}
	// 0.5 carried over from the first stage
	p.Advance(2.5, 1)
	if !p.Mature() {
		t.Errorf("expected mature plant, got stage %d", p.Stage())
	}
	if got := slices.Index(msgs, "Fern grew!"); got < 0 {
		t.Errorf("expected grew notification, got %v", msgs)
	}
}

func TestPlantDaylightRule(t *testing.T) {
	tests := []struct {
		name     string
		night    bool
		daylight float64
		grows    bool
	}{
		{"day plant in sun", false, 1, true},
		{"day plant at dusk", false, 0.3, true},
		{"day plant at night", false, 0, false},
		{"night plant at night", true, 0, true},
		{"night plant at dawn", true, 0.5, true},
		{"night plant in sun", true, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := fern()
			spec.NightBlooming = tt.night
			p, _ := NewPlant(spec, nil)
			p.Advance(2, tt.daylight)
			if grew := p.Stage() == 1; grew != tt.grows {
				t.Errorf("expected grows=%v, got stage %d", tt.grows, p.Stage())
			}
		})
	}
}

func TestPlantThirstAndDeath(t *testing.T) {
	var msgs messages
	spec := fern()
	spec.Stages = []float64{100, 0}
	p, _ := NewPlant(spec, &msgs)

	p.Advance(10, 1)
	if !p.Thirsty() {
		t.Fatal("expected plant to be thirsty")
	}
	p.Advance(1, 1)
	if p.Dead() {
		t.Fatal("expected plant to survive inside drought window")
	}
	if !p.Water() || p.Thirsty() {
		t.Fatal("expected watering to clear thirst")
	}

	p.Advance(10, 1)
	p.Advance(4, 1)
	if !p.Dead() {
		t.Fatal("expected plant to die after drought window")
	}
	if p.Water() {
		t.Error("expected watering a dead plant to fail")
	}

	expected := []string{"Fern needs water!", "Fern watered.", "Fern needs water!", "Fern has died."}
	if !slices.Equal(msgs, expected) {
		t.Errorf("expected %v, got %v", expected, msgs)
	}
}

func TestThirstyPlantDoesNotGrow(t *testing.T) {
	spec := fern()
	spec.WaterHours = 1
	p, _ := NewPlant(spec, nil)
	p.Advance(1, 1)
	p.Advance(2, 1)
	if p.Stage() != 0 {
		t.Errorf("expected no growth while thirsty, got stage %d", p.Stage())
	}
}

func TestManagerRegisterIdempotent(t *testing.T) {
	m := NewManager(fixedDaylight(1), nil)
	p, _ := NewPlant(fern(), nil)

	m.Register(p)
	m.Register(p)
	if n := len(m.Plants()); n != 1 {
		t.Errorf("expected 1 plant, got %d", n)
	}
	m.Unregister(p)
	m.Unregister(p)
	if n := len(m.Plants()); n != 0 {
		t.Errorf("expected 0 plants, got %d", n)
	}
}

func TestManagerFansOutHours(t *testing.T) {
	m := NewManager(fixedDaylight(0), nil)
	day, _ := NewPlant(fern(), nil)
	nightSpec := fern()
	nightSpec.NightBlooming = true
	night, _ := NewPlant(nightSpec, nil)
	m.Register(day)
	m.Register(night)

	m.NotifyElapsedGameHours(2)
	m.NotifyElapsedGameHours(0)

	if day.Stage() != 0 {
		t.Errorf("expected day plant to wait for light, got stage %d", day.Stage())
	}
	if night.Stage() != 1 {
		t.Errorf("expected night plant to grow, got stage %d", night.Stage())
	}
	if m.ElapsedHours() != 2 {
		t.Errorf("expected 2 elapsed hours, got %v", m.ElapsedHours())
	}
}
