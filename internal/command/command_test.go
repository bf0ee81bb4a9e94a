package command

import (
	"testing"

	"github.com/Faultbox/leaf-daycycle/internal/runner"
)

type clockStub struct {
	hours []float64
}

func (c *clockStub) SetTime(h float64) { c.hours = append(c.hours, h) }

func TestFromRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected Command
	}{
		{'1', Command{Kind: JumpTo, Hour: 0}},
		{'2', Command{Kind: JumpTo, Hour: 6}},
		{'3', Command{Kind: JumpTo, Hour: 12}},
		{'4', Command{Kind: JumpTo, Hour: 18}},
		{'+', Command{Kind: Faster}},
		{'=', Command{Kind: Faster}},
		{'-', Command{Kind: Slower}},
		{' ', Command{Kind: TogglePause}},
		{'q', Command{Kind: Quit}},
		{'x', Command{}},
		{'5', Command{}},
	}
	for _, tt := range tests {
		if got := FromRune(tt.r); got != tt.expected {
			t.Errorf("FromRune(%q): expected %+v, got %+v", tt.r, tt.expected, got)
		}
	}
}

func TestApply(t *testing.T) {
	clock := &clockStub{}
	ctl := runner.NewControl()

	if Apply(FromRune('3'), clock, ctl, nil) {
		t.Error("jump should not quit")
	}
	if len(clock.hours) != 1 || clock.hours[0] != 12 {
		t.Errorf("expected SetTime(12), got %v", clock.hours)
	}

	Apply(Command{Kind: Faster}, clock, ctl, nil)
	if ctl.Speed() != 2 {
		t.Errorf("expected speed 2, got %v", ctl.Speed())
	}
	Apply(Command{Kind: Slower}, clock, ctl, nil)
	Apply(Command{Kind: Slower}, clock, ctl, nil)
	if ctl.Speed() != 0.5 {
		t.Errorf("expected speed 0.5, got %v", ctl.Speed())
	}

	Apply(Command{Kind: TogglePause}, clock, ctl, nil)
	if !ctl.Paused() {
		t.Error("expected paused")
	}

	if !Apply(Command{Kind: Quit}, clock, ctl, nil) {
		t.Error("expected quit")
	}
	if Kind(99).String() != "none" || Quit.String() != "quit" {
		t.Error("unexpected kind names")
	}
}
