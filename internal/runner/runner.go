// Package runner drives a simulation at a fixed real-time rate.
package runner

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Ticker is advanced once per tick by the elapsed (scaled) seconds.
type Ticker interface {
	Update(dt float64)
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func(dt float64)

// Update calls f(dt).
func (f TickerFunc) Update(dt float64) {
	f(dt)
}

// Runner calls a Ticker at a fixed interval. Ticks and posted functions all
// run on the goroutine that called Run.
type Runner struct {
	*Control

	target   Ticker
	interval time.Duration
	clock    clockwork.Clock
	log      *zap.Logger
	ops      chan func()
	ticks    uint64
}

// New creates a runner calling target every interval. A nil clock uses the
// wall clock and a nil logger discards output.
func New(target Ticker, interval time.Duration, clock clockwork.Clock, log *zap.Logger) *Runner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &Runner{
		Control:  NewControl(),
		target:   target,
		interval: interval,
		clock:    clock,
		log:      log.Named("runner"),
		ops:      make(chan func(), 16),
	}
}

// IntervalForRate converts updates per second into a tick interval.
func IntervalForRate(rate int) time.Duration {
	if rate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(rate)
}

// Interval returns the tick interval.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// Do queues fn to run between ticks. It blocks while the queue is full.
func (r *Runner) Do(fn func()) {
	r.ops <- fn
}

// Ticks returns the number of ticks delivered. Only meaningful from the run
// goroutine or after Run returns.
func (r *Runner) Ticks() uint64 {
	return r.ticks
}

// Run ticks until ctx is cancelled. The elapsed time of each tick is measured
// on the clock, so late ticks carry the time they missed.
func (r *Runner) Run(ctx context.Context) error {
	t := r.clock.NewTicker(r.interval)
	defer t.Stop()

	r.log.Info("runner started", zap.Duration("interval", r.interval))
	last := r.clock.Now()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("runner stopped", zap.Uint64("ticks", r.ticks))
			return ctx.Err()
		case fn := <-r.ops:
			fn()
		case <-t.Chan():
			now := r.clock.Now()
			dt := now.Sub(last).Seconds()
			last = now
			r.ticks++
			r.target.Update(r.Apply(dt))
		}
	}
}
