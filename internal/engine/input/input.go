// Package input turns SDL2 events into simulation commands.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/leaf-daycycle/internal/command"
)

// Input collects the commands and resizes from one frame of events.
type Input struct {
	commands []command.Command
	width    int
	height   int
	resized  bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{commands: make([]command.Command, 0, 8)}
}

// keyRunes maps scancodes to the characters the command table understands,
// so the viewer and the terminal share one key layout.
var keyRunes = map[sdl.Scancode]rune{
	sdl.SCANCODE_1:        '1',
	sdl.SCANCODE_2:        '2',
	sdl.SCANCODE_3:        '3',
	sdl.SCANCODE_4:        '4',
	sdl.SCANCODE_KP_1:     '1',
	sdl.SCANCODE_KP_2:     '2',
	sdl.SCANCODE_KP_3:     '3',
	sdl.SCANCODE_KP_4:     '4',
	sdl.SCANCODE_EQUALS:   '+',
	sdl.SCANCODE_KP_PLUS:  '+',
	sdl.SCANCODE_MINUS:    '-',
	sdl.SCANCODE_KP_MINUS: '-',
	sdl.SCANCODE_SPACE:    ' ',
	sdl.SCANCODE_Q:        'q',
}

// CommandFor maps a scancode to a command.
func CommandFor(sc sdl.Scancode) command.Command {
	if sc == sdl.SCANCODE_ESCAPE {
		return command.Command{Kind: command.Quit}
	}
	if r, ok := keyRunes[sc]; ok {
		return command.FromRune(r)
	}
	return command.Command{}
}

// Update polls pending SDL events.
func (i *Input) Update() {
	i.commands = i.commands[:0]
	i.resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.commands = append(i.commands, command.Command{Kind: command.Quit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.width, i.height = int(e.Data1), int(e.Data2)
				i.resized = true
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if cmd := CommandFor(e.Keysym.Scancode); cmd.Kind != command.None {
				i.commands = append(i.commands, cmd)
			}
		}
	}
}

// Commands returns the commands from the last Update.
func (i *Input) Commands() []command.Command {
	return i.commands
}

// Resized reports a window size change during the last Update.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}
