package audio

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/daynight"
)

// Backend plays a looping track.
type Backend interface {
	PlayLoop(name string, data []byte) error
}

// LoadFunc reads a track file.
type LoadFunc func(path string) ([]byte, error)

var periodKinds = []daynight.PeriodKind{
	daynight.Night, daynight.Sunrise, daynight.Day, daynight.Sunset,
}

// Ambience switches the background track when the period changes. Tracks
// are read once at construction.
type Ambience struct {
	backend Backend
	log     *zap.Logger

	tracks  map[daynight.PeriodKind]string
	data    map[string][]byte
	current string
}

// NewAmbience builds an ambience from a map of lower-case period names
// (night, sunrise, day, sunset) to WAV paths. A nil load reads from disk.
func NewAmbience(tracks map[string]string, backend Backend, load LoadFunc, log *zap.Logger) (*Ambience, error) {
	if load == nil {
		load = os.ReadFile
	}
	if log == nil {
		log = zap.NewNop()
	}
	a := &Ambience{
		backend: backend,
		log:     log.Named("ambience"),
		tracks:  make(map[daynight.PeriodKind]string),
		data:    make(map[string][]byte),
	}
	for _, kind := range periodKinds {
		path := tracks[strings.ToLower(kind.String())]
		if path == "" {
			continue
		}
		a.tracks[kind] = path
		if _, ok := a.data[path]; ok {
			continue
		}
		b, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s track: %w", kind, err)
		}
		a.data[path] = b
	}
	return a, nil
}

// TrackFor returns the track configured for kind, or "".
func (a *Ambience) TrackFor(kind daynight.PeriodKind) string {
	return a.tracks[kind]
}

// Current returns the track playing.
func (a *Ambience) Current() string {
	return a.current
}

// Play starts the track for kind. A period without a track keeps the current
// one playing.
func (a *Ambience) Play(kind daynight.PeriodKind) {
	path := a.tracks[kind]
	if path == "" || path == a.current {
		return
	}
	if err := a.backend.PlayLoop(path, a.data[path]); err != nil {
		a.log.Warn("play track failed", zap.String("track", path), zap.Error(err))
		return
	}
	a.current = path
	a.log.Debug("track changed", zap.String("track", path), zap.Stringer("period", kind))
}

// OnPeriodChanged implements daynight.PeriodListener.
func (a *Ambience) OnPeriodChanged(_, to daynight.PeriodKind) {
	a.Play(to)
}
