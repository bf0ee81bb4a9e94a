// Package command maps player keys to simulation commands shared by the
// viewer and the terminal dashboard.
package command

import (
	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/runner"
)

// Kind identifies a command.
type Kind int

const (
	None Kind = iota
	JumpTo
	Faster
	Slower
	TogglePause
	Quit
)

// String returns the command name.
func (k Kind) String() string {
	switch k {
	case JumpTo:
		return "jump"
	case Faster:
		return "faster"
	case Slower:
		return "slower"
	case TogglePause:
		return "pause"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Command is a player request. Hour is set for JumpTo.
type Command struct {
	Kind Kind
	Hour float64
}

// Jump hours for the number keys 1 to 4.
var jumpHours = [4]float64{0, 6, 12, 18}

// Help is the one-line key reference.
const Help = "1-4 jump 00/06/12/18  +/- speed  space pause  q/esc quit"

// FromRune maps a typed character to a command.
func FromRune(r rune) Command {
	switch r {
	case '1', '2', '3', '4':
		return Command{Kind: JumpTo, Hour: jumpHours[r-'1']}
	case '+', '=':
		return Command{Kind: Faster}
	case '-', '_':
		return Command{Kind: Slower}
	case ' ':
		return Command{Kind: TogglePause}
	case 'q', 'Q':
		return Command{Kind: Quit}
	}
	return Command{}
}

// TimeSetter jumps the simulation clock.
type TimeSetter interface {
	SetTime(hour float64)
}

// Apply executes cmd. It must run on the goroutine that drives the cycle. It
// reports whether the player asked to quit.
func Apply(cmd Command, clock TimeSetter, ctl *runner.Control, log *zap.Logger) bool {
	if log == nil {
		log = zap.NewNop()
	}
	switch cmd.Kind {
	case JumpTo:
		clock.SetTime(cmd.Hour)
		log.Debug("jump", zap.Float64("hour", cmd.Hour))
	case Faster:
		log.Debug("speed", zap.Float64("speed", ctl.Faster()))
	case Slower:
		log.Debug("speed", zap.Float64("speed", ctl.Slower()))
	case TogglePause:
		log.Debug("pause", zap.Bool("paused", ctl.TogglePause()))
	case Quit:
		return true
	}
	return false
}
