package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/leaf-daycycle/internal/command"
	"github.com/Faultbox/leaf-daycycle/internal/daynight"
	"github.com/Faultbox/leaf-daycycle/internal/engine/lighting"
	"github.com/Faultbox/leaf-daycycle/internal/garden"
	"github.com/Faultbox/leaf-daycycle/internal/hud"
	"github.com/Faultbox/leaf-daycycle/internal/runner"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func screenText(screen tcell.SimulationScreen) []string {
	cells, w, h := screen.GetContents()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(runes[0])
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

func TestDashboardDraw(t *testing.T) {
	screen := newScreen(t)
	d := New(screen)
	d.Draw(State{
		Snapshot: daynight.Snapshot{
			Formatted: "17:30",
			Period:    "Sunset",
			Progress:  0.5,
			Daylight:  0.5,
			SunAngle:  172.5,
			Skybox:    "sky_sunset",
		},
		Speed:  2,
		Toasts: []string{"Fern grew!"},
	})

	lines := screenText(screen)
	if !strings.Contains(lines[0], "17:30") || !strings.Contains(lines[0], "[x2]") {
		t.Errorf("expected title with time and speed, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "Sunset") || !strings.Contains(lines[2], "50%") {
		t.Errorf("expected period line, got %q", lines[2])
	}
	if n := strings.Count(lines[3], "#"); n != barWidth/2 {
		t.Errorf("expected %d filled bar cells, got %d", barWidth/2, n)
	}
	if !strings.Contains(lines[5], "sky_sunset") {
		t.Errorf("expected skybox line, got %q", lines[5])
	}
	if lines[9] != " Fern grew!" {
		t.Errorf("expected toast on line 9, got %q", lines[9])
	}
	if !strings.Contains(lines[23], "pause") {
		t.Errorf("expected help line, got %q", lines[23])
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		ev       tcell.Event
		expected command.Command
	}{
		{tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), command.Command{Kind: command.JumpTo, Hour: 6}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), command.Command{Kind: command.TogglePause}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), command.Command{Kind: command.Quit}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), command.Command{}},
		{tcell.NewEventResize(10, 10), command.Command{}},
	}
	for _, tt := range tests {
		if got := KeyCommand(tt.ev); got != tt.expected {
			t.Errorf("expected %+v, got %+v", tt.expected, got)
		}
	}
}

func TestAppUpdateRedraws(t *testing.T) {
	screen := newScreen(t)
	light := lighting.NewDirectionalLight()
	s := daynight.DefaultSettings()
	s.StartHour = 12
	cycle := daynight.New(s, daynight.Deps{Light: light})
	if err := cycle.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	notify := hud.NewNotifier(nil)
	plants := garden.NewManager(cycle, nil)
	p, _ := garden.NewPlant(garden.PlantSpec{Name: "Fern", Stages: []float64{1, 0}, WaterHours: 5, DroughtHours: 1}, notify)
	plants.Register(p)

	app := NewApp(screen, cycle, notify, plants, nil)
	app.Attach(runner.New(app, 0, nil, nil))
	notify.Notify("hello")
	app.Update(0.1)

	lines := screenText(screen)
	if !strings.Contains(lines[0], "12:00") {
		t.Errorf("expected 12:00 in title, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "Day") {
		t.Errorf("expected Day period, got %q", lines[2])
	}
	if !strings.Contains(lines[9], "Fern") || !strings.Contains(lines[9], "growing") {
		t.Errorf("expected garden line, got %q", lines[9])
	}
	if !strings.Contains(lines[11], "hello") {
		t.Errorf("expected toast, got %q", lines[11])
	}
}
