// Package game runs the sky viewer: an SDL window showing the cycle's sky,
// light and sun in real time.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/command"
	"github.com/Faultbox/leaf-daycycle/internal/daynight"
	"github.com/Faultbox/leaf-daycycle/internal/engine/input"
	"github.com/Faultbox/leaf-daycycle/internal/engine/lighting"
	"github.com/Faultbox/leaf-daycycle/internal/engine/renderer"
	"github.com/Faultbox/leaf-daycycle/internal/engine/window"
	"github.com/Faultbox/leaf-daycycle/internal/hud"
	"github.com/Faultbox/leaf-daycycle/internal/runner"
)

// maxFrameTime caps dt after a stall (window drag, breakpoint).
const maxFrameTime = 0.25

// Options wires the viewer to a cycle. The cycle must have been built with
// Light and Sky as its collaborators.
type Options struct {
	Window   window.Config
	Cycle    *daynight.Cycle
	Light    *lighting.DirectionalLight
	Sky      *lighting.Sky
	HUD      *hud.HUD
	Notifier *hud.Notifier
	Logger   *zap.Logger
}

// Game is the viewer instance.
type Game struct {
	opts     Options
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	control  *runner.Control
	title    string
}

// New opens the window and GL renderer.
func New(opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		opts:    opts,
		log:     log.Named("game"),
		input:   input.New(),
		control: runner.NewControl(),
	}

	var err error
	g.window, err = window.New(opts.Window, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after the window, since the GL context must exist
	w, h := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{Width: w, Height: h}, log)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.log.Info("viewer initialized")
	return g, nil
}

// Control returns the speed and pause state.
func (g *Game) Control() *runner.Control {
	return g.control
}

// Run loops until the window closes or the player quits.
func (g *Game) Run() error {
	g.running = true
	last := time.Now()
	frames := 0
	fpsTimer := last

	g.log.Info("starting loop")
	for g.running {
		now := time.Now()
		dt := min(now.Sub(last).Seconds(), maxFrameTime)
		last = now

		g.handleInput()
		g.update(dt)
		g.renderer.Draw(lighting.ComputeFrame(g.opts.Light, g.opts.Sky))
		g.window.SwapBuffers()

		frames++
		if now.Sub(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frames), zap.String("time", g.opts.Cycle.FormattedTime()))
			frames = 0
			fpsTimer = now
		}
	}
	return nil
}

func (g *Game) handleInput() {
	g.input.Update()
	if _, _, ok := g.input.Resized(); ok {
		g.renderer.Resize(g.window.Size())
	}
	for _, cmd := range g.input.Commands() {
		if command.Apply(cmd, g.opts.Cycle, g.control, g.log) {
			g.running = false
			return
		}
	}
}

func (g *Game) update(dt float64) {
	g.opts.Cycle.Update(g.control.Apply(dt))
	if g.opts.Notifier != nil {
		g.opts.Notifier.Advance(dt)
	}
	if g.opts.Sky.ConsumeDirty() {
		g.log.Debug("environment refreshed", zap.String("skybox", g.opts.Sky.Asset()))
	}
	g.updateTitle()
}

func (g *Game) updateTitle() {
	label := g.opts.Cycle.FormattedTime()
	if g.opts.HUD != nil {
		label = g.opts.HUD.Time()
	}
	title := fmt.Sprintf("%s - %s %s", g.opts.Window.Title, label, g.opts.Cycle.CurrentPeriod().Kind)
	if g.control.Paused() {
		title += " (paused)"
	}
	if g.opts.Notifier != nil {
		if active := g.opts.Notifier.Active(); len(active) > 0 {
			title += " | " + active[len(active)-1]
		}
	}
	if title != g.title {
		g.title = title
		g.window.SetTitle(title)
	}
}

// Close releases the renderer and window.
func (g *Game) Close() {
	g.log.Info("closing viewer")
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
