// Package audio plays looping background ambience.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio: not initialized")

// Player plays one looping track at a time through the speaker.
type Player struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	name     string

	level float64 // 0.0 to 1.0
}

// NewPlayer creates a player at the given volume.
func NewPlayer(volume float64) *Player {
	return &Player{level: clamp(volume, 0, 1)}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	p.sampleRate = DefaultSampleRate
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stop()
	if p.initialized {
		speaker.Close()
	}
	p.initialized = false
}

// SetVolume sets the volume (0.0 to 1.0).
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = clamp(vol, 0, 1)
	p.applyVolume()
}

// Volume returns the volume.
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

func (p *Player) applyVolume() {
	if p.volume == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	p.volume.Silent = p.level <= 0
	p.volume.Volume = volumeToDb(p.level) / 20 // Base 10 exponent
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0dB, 0.5 is about -6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PlayLoop replaces the current track with WAV data looped forever.
func (p *Player) PlayLoop(name string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav %s: %w", name, err)
	}

	p.stop()

	var resampled beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	p.ctrl = &beep.Ctrl{Streamer: &loopStreamer{source: streamer, out: resampled}}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 10}
	p.streamer = streamer
	p.name = name
	p.applyVolume()

	speaker.Play(p.volume)
	return nil
}

// Stop stops the current track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stop()
}

func (p *Player) stop() {
	if p.initialized {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.name = ""
}

// SetPaused pauses or resumes the current track.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Playing returns the name of the current track, or "".
func (p *Player) Playing() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

// loopStreamer restarts its source when it runs out.
type loopStreamer struct {
	source beep.StreamSeekCloser
	out    beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.out.Stream(samples[filled:])
		filled += n
		if !ok {
			if err := l.source.Seek(0); err != nil {
				return filled, filled > 0
			}
			if n == 0 && l.source.Len() == 0 {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
