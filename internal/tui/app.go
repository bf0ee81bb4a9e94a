package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/command"
	"github.com/Faultbox/leaf-daycycle/internal/daynight"
	"github.com/Faultbox/leaf-daycycle/internal/garden"
	"github.com/Faultbox/leaf-daycycle/internal/hud"
	"github.com/Faultbox/leaf-daycycle/internal/runner"
)

// App advances the cycle and redraws the dashboard once per tick.
type App struct {
	dash   *Dashboard
	cycle  *daynight.Cycle
	notify *hud.Notifier
	garden *garden.Manager
	run    *runner.Runner
	log    *zap.Logger
}

// NewApp wires a dashboard to a cycle. notify and plants may be nil.
func NewApp(screen tcell.Screen, cycle *daynight.Cycle, notify *hud.Notifier, plants *garden.Manager, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		dash:   New(screen),
		cycle:  cycle,
		notify: notify,
		garden: plants,
		log:    log.Named("tui"),
	}
}

// Attach sets the runner whose speed and pause state the app shows and
// controls.
func (a *App) Attach(r *runner.Runner) {
	a.run = r
}

// Update implements runner.Ticker.
func (a *App) Update(dt float64) {
	a.cycle.Update(dt)
	if a.notify != nil {
		a.notify.Advance(dt)
	}
	a.Redraw()
}

// Redraw renders the current state without advancing time.
func (a *App) Redraw() {
	s := State{Snapshot: a.cycle.Snapshot(), Speed: 1}
	if a.run != nil {
		s.Speed = a.run.Speed()
		s.Paused = a.run.Paused()
	}
	if a.notify != nil {
		s.Toasts = a.notify.Active()
	}
	if a.garden != nil {
		for _, p := range a.garden.Plants() {
			s.Garden = append(s.Garden, plantLine(p))
		}
	}
	a.dash.Draw(s)
}

func plantLine(p *garden.Plant) string {
	status := "growing"
	switch {
	case p.Dead():
		status = "dead"
	case p.Thirsty():
		status = "thirsty"
	case p.Mature():
		status = "mature"
	}
	return fmt.Sprintf("%-12s stage %d  %s", p.Name(), p.Stage(), status)
}

// HandleEvents reads terminal events until the screen is finalized or the
// player quits. Commands are posted to the runner so they run between ticks.
// cancel is called on quit.
func (a *App) HandleEvents(ctx context.Context, screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		cmd := KeyCommand(ev)
		if cmd.Kind == command.None {
			continue
		}
		if cmd.Kind == command.Quit {
			a.log.Info("quit requested")
			cancel()
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		a.run.Do(func() {
			command.Apply(cmd, a.cycle, a.run.Control, a.log)
			a.Redraw()
		})
	}
}
