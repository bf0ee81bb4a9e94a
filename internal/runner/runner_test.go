package runner

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type recorder struct {
	dts chan float64
}

func (r *recorder) Update(dt float64) {
	r.dts <- dt
}

func startRunner(t *testing.T, interval time.Duration) (*Runner, *clockwork.FakeClock, *recorder, func() error) {
	t.Helper()
	fc := clockwork.NewFakeClock()
	rec := &recorder{dts: make(chan float64, 8)}
	r := New(rec, interval, fc, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	if err := fc.BlockUntilContext(waitCtx, 1); err != nil {
		cancel()
		t.Fatalf("runner did not start: %v", err)
	}

	stop := func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(2 * time.Second):
			t.Fatal("runner did not stop")
			return nil
		}
	}
	return r, fc, rec, stop
}

func nextDT(t *testing.T, rec *recorder) float64 {
	t.Helper()
	select {
	case dt := <-rec.dts:
		return dt
	case <-time.After(2 * time.Second):
		t.Fatal("expected a tick")
		return 0
	}
}

func TestRunnerMeasuresElapsedTime(t *testing.T) {
	_, fc, rec, stop := startRunner(t, 100*time.Millisecond)

	fc.Advance(100 * time.Millisecond)
	if dt := nextDT(t, rec); math.Abs(dt-0.1) > 1e-9 {
		t.Errorf("expected dt 0.1, got %v", dt)
	}

	fc.Advance(100 * time.Millisecond)
	if dt := nextDT(t, rec); math.Abs(dt-0.1) > 1e-9 {
		t.Errorf("expected dt 0.1, got %v", dt)
	}

	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunnerSpeedAndPause(t *testing.T) {
	r, fc, rec, stop := startRunner(t, 100*time.Millisecond)
	defer stop()

	r.SetSpeed(4)
	fc.Advance(100 * time.Millisecond)
	if dt := nextDT(t, rec); math.Abs(dt-0.4) > 1e-9 {
		t.Errorf("expected dt 0.4 at 4x, got %v", dt)
	}

	r.SetPaused(true)
	fc.Advance(100 * time.Millisecond)
	if dt := nextDT(t, rec); dt != 0 {
		t.Errorf("expected dt 0 while paused, got %v", dt)
	}
}

func TestRunnerDoRunsBetweenTicks(t *testing.T) {
	r, fc, rec, stop := startRunner(t, 100*time.Millisecond)
	defer stop()

	ran := make(chan struct{})
	r.Do(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("expected posted function to run")
	}

	fc.Advance(100 * time.Millisecond)
	nextDT(t, rec)
	got := make(chan uint64, 1)
	r.Do(func() { got <- r.Ticks() })
	if n := <-got; n != 1 {
		t.Errorf("expected 1 tick, got %d", n)
	}
}

func TestControlClampsSpeed(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{1, 1},
		{0, MinSpeed},
		{-3, MinSpeed},
		{1000, MaxSpeed},
	}
	for _, tt := range tests {
		c := NewControl()
		if got := c.SetSpeed(tt.in); got != tt.expected {
			t.Errorf("SetSpeed(%v): expected %v, got %v", tt.in, tt.expected, got)
		}
	}

	c := NewControl()
	if got := c.Faster(); got != 2 {
		t.Errorf("expected 2 after Faster, got %v", got)
	}
	c.Slower()
	if got := c.Slower(); got != 0.5 {
		t.Errorf("expected 0.5 after two Slower, got %v", got)
	}
	if !c.TogglePause() || c.Apply(1) != 0 {
		t.Error("expected paused control to return 0")
	}
	if c.Apply(-1) != 0 {
		t.Error("expected negative dt to return 0")
	}
}

func TestIntervalForRate(t *testing.T) {
	if got := IntervalForRate(10); got != 100*time.Millisecond {
		t.Errorf("expected 100ms, got %v", got)
	}
	if got := IntervalForRate(0); got != time.Second/30 {
		t.Errorf("expected default interval, got %v", got)
	}
}
