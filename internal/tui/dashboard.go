// Package tui draws the cycle state on a terminal with tcell.
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/leaf-daycycle/internal/command"
	"github.com/Faultbox/leaf-daycycle/internal/daynight"
	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

const barWidth = 30

var (
	styleBase   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 180))
	styleDim    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 120, 120))
	styleToast  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 165, 0))
	styleBarOn  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 220, 100))
	styleBarOff = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 90))
)

// State is one frame of dashboard content.
type State struct {
	Snapshot daynight.Snapshot
	Speed    float64
	Paused   bool
	Toasts   []string
	Garden   []string
}

// Dashboard renders State onto a tcell screen.
type Dashboard struct {
	screen tcell.Screen
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Dashboard {
	return &Dashboard{screen: screen}
}

// Draw clears the screen and renders s.
func (d *Dashboard) Draw(s State) {
	d.screen.Clear()
	snap := s.Snapshot

	title := "Leaf day/night  " + snap.Formatted
	if s.Paused {
		title += "  [paused]"
	} else if s.Speed != 1 {
		title += fmt.Sprintf("  [x%g]", s.Speed)
	}
	d.puts(1, 0, title, styleTitle)

	d.label(2, "Period")
	period := snap.Period
	if snap.Progress > 0 {
		period += fmt.Sprintf(" %3.0f%%", snap.Progress*100)
	}
	d.puts(11, 2, period, styleBase)

	d.label(3, "Daylight")
	d.bar(11, 3, snap.Daylight)
	d.puts(13+barWidth, 3, fmt.Sprintf("%.2f", snap.Daylight), styleBase)

	d.label(4, "Sun")
	d.puts(11, 4, fmt.Sprintf("%6.1f deg", snap.SunAngle), styleBase)

	d.label(5, "Skybox")
	d.puts(11, 5, snap.Skybox, styleBase)

	lt := snap.Lighting
	d.label(6, "Light")
	d.swatch(11, 6, lt.LightColor)
	d.puts(18, 6, fmt.Sprintf("intensity %.2f  shadow %.2f", lt.Intensity, lt.ShadowStrength), styleBase)

	d.label(7, "Ambient")
	d.swatch(11, 7, lt.Ambient)

	y := 9
	for _, line := range s.Garden {
		d.puts(1, y, line, styleBase)
		y++
	}
	if len(s.Garden) > 0 {
		y++
	}
	for _, msg := range s.Toasts {
		d.puts(1, y, msg, styleToast)
		y++
	}

	_, h := d.screen.Size()
	d.puts(1, h-1, command.Help, styleDim)
	d.screen.Show()
}

func (d *Dashboard) label(y int, text string) {
	d.puts(1, y, text, styleLabel)
}

func (d *Dashboard) puts(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (d *Dashboard) bar(x, y int, v float64) {
	filled := int(math.Round(float64(lmath.Clamp01(float32(v))) * barWidth))
	d.puts(x, y, strings.Repeat("#", filled), styleBarOn)
	d.puts(x+filled, y, strings.Repeat(".", barWidth-filled), styleBarOff)
}

func (d *Dashboard) swatch(x, y int, c lmath.Color) {
	r, g, b := c.Bytes()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	d.puts(x, y, "      ", style)
}

// KeyCommand maps a terminal event to a command.
func KeyCommand(ev tcell.Event) command.Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return command.Command{}
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command.Command{Kind: command.Quit}
	case tcell.KeyRune:
		return command.FromRune(key.Rune())
	}
	return command.Command{}
}
