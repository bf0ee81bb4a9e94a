// Package sim assembles a day/night cycle with its collaborators from config.
package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/config"
	"github.com/Faultbox/leaf-daycycle/internal/daynight"
	"github.com/Faultbox/leaf-daycycle/internal/engine/audio"
	"github.com/Faultbox/leaf-daycycle/internal/engine/lighting"
	"github.com/Faultbox/leaf-daycycle/internal/garden"
	"github.com/Faultbox/leaf-daycycle/internal/hud"
	"github.com/Faultbox/leaf-daycycle/internal/observer"
)

// Sim is a wired cycle. Observer and Ambience are nil when disabled.
type Sim struct {
	Cycle    *daynight.Cycle
	Light    *lighting.DirectionalLight
	Sky      *lighting.Sky
	HUD      *hud.HUD
	Notifier *hud.Notifier
	Garden   *garden.Manager
	Observer *observer.Server
	Ambience *audio.Ambience

	player *audio.Player
	log    *zap.Logger
}

// hudFanout passes the clock to several sinks in order.
type hudFanout []daynight.HUDSink

func (f *hudFanout) NotifyFormattedTime(s string) {
	for _, sink := range *f {
		sink.NotifyFormattedTime(s)
	}
}

// Build wires everything cfg enables. The cycle is not started.
func Build(cfg *config.Config, log *zap.Logger) (*Sim, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Sim{
		Light:    lighting.NewDirectionalLight(),
		Sky:      lighting.NewSky(cfg.Skybox.Tints),
		HUD:      hud.New(),
		Notifier: hud.NewNotifier(log),
		Garden:   garden.NewManager(nil, log),
		log:      log.Named("sim"),
	}
	s.HUD.OnChange(func(t string) {
		s.log.Debug("clock", zap.String("time", t))
	})

	for _, spec := range cfg.Garden.Plants {
		p, err := garden.NewPlant(spec, s.Notifier)
		if err != nil {
			return nil, fmt.Errorf("plant %q: %w", spec.Name, err)
		}
		s.Garden.Register(p)
	}

	sinks := &hudFanout{s.HUD}
	s.Cycle = daynight.New(cfg.Settings(), daynight.Deps{
		Light:  s.Light,
		Sky:    s.Sky,
		Growth: s.Garden,
		HUD:    sinks,
		Logger: log,
	})
	s.Garden.SetDaylightSource(s.Cycle)

	s.Cycle.AddPeriodListener(daynight.PeriodListenerFunc(func(_, to daynight.PeriodKind) {
		s.Notifier.Notify(periodMessage(to))
	}))

	if cfg.Observer.Addr != "" {
		s.Observer = observer.NewServer(s.Cycle, log)
		*sinks = append(*sinks, s.Observer)
	}

	if cfg.Audio.Enabled {
		s.setupAudio(cfg.Audio)
	}
	return s, nil
}

// setupAudio enables ambience. Audio failures are logged and leave the
// simulation silent.
func (s *Sim) setupAudio(cfg config.AudioConfig) {
	player := audio.NewPlayer(cfg.Volume)
	amb, err := audio.NewAmbience(cfg.Tracks, player, nil, s.log)
	if err != nil {
		s.log.Warn("ambience disabled", zap.Error(err))
		return
	}
	if err := player.Init(); err != nil {
		s.log.Warn("ambience disabled", zap.Error(err))
		return
	}
	s.player = player
	s.Ambience = amb
	s.Cycle.AddPeriodListener(amb)
}

func periodMessage(k daynight.PeriodKind) string {
	switch k {
	case daynight.Sunrise:
		return "The sun is rising."
	case daynight.Day:
		return "Day has begun."
	case daynight.Sunset:
		return "The sun is setting."
	default:
		return "Night falls."
	}
}

// Start starts the cycle and, on success, the ambience for the starting
// period and the first observer snapshot.
func (s *Sim) Start() error {
	if err := s.Cycle.Start(); err != nil {
		return err
	}
	if s.Ambience != nil {
		s.Ambience.Play(s.Cycle.CurrentPeriod().Kind)
	}
	if s.Observer != nil {
		s.Observer.Publish()
	}
	return nil
}

// Close releases audio.
func (s *Sim) Close() {
	if s.player != nil {
		s.player.Close()
	}
}
