package garden

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

// DaylightSource reports the current daylight amount in [0, 1].
type DaylightSource interface {
	DaylightAmount() float64
}

// Manager hands elapsed game hours to every registered plant.
type Manager struct {
	mu       sync.Mutex
	plants   []*Plant
	daylight DaylightSource
	log      *zap.Logger
	hours    float64
}

// NewManager creates a manager. With a nil daylight source every plant may
// grow at any hour.
func NewManager(daylight DaylightSource, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{daylight: daylight, log: log.Named("garden")}
}

// SetDaylightSource replaces the daylight source.
func (m *Manager) SetDaylightSource(d DaylightSource) {
	m.mu.Lock()
	m.daylight = d
	m.mu.Unlock()
}

// Register adds a plant. Registering twice has no effect.
func (m *Manager) Register(p *Plant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slices.Contains(m.plants, p) {
		return
	}
	m.plants = append(m.plants, p)
	m.log.Debug("plant registered", zap.String("name", p.Name()), zap.Int("plants", len(m.plants)))
}

// Unregister removes a plant. Unknown plants are ignored.
func (m *Manager) Unregister(p *Plant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := slices.Index(m.plants, p); i >= 0 {
		m.plants = slices.Delete(m.plants, i, i+1)
	}
}

// NotifyElapsedGameHours advances every plant.
func (m *Manager) NotifyElapsedGameHours(hours float64) {
	if hours <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	daylight := 0.5
	if m.daylight != nil {
		daylight = m.daylight.DaylightAmount()
	}
	m.hours += hours
	for _, p := range m.plants {
		wasDead := p.Dead()
		p.Advance(hours, daylight)
		if !wasDead && p.Dead() {
			m.log.Debug("plant died", zap.String("name", p.Name()))
		}
	}
}

// Plants returns the registered plants.
func (m *Manager) Plants() []*Plant {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.plants)
}

// ElapsedHours returns the total game hours handed out.
func (m *Manager) ElapsedHours() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hours
}
