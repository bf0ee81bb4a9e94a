// Package main runs the day/night cycle headless, optionally streaming its
// state over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/config"
	"github.com/Faultbox/leaf-daycycle/internal/logger"
	"github.com/Faultbox/leaf-daycycle/internal/runner"
	"github.com/Faultbox/leaf-daycycle/internal/sim"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	logger.Info("=== Leaf day/night cycle ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("simulation error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("stopped")
}

func run(cfg *config.Config) error {
	s, err := sim.Build(cfg, logger.Log)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(runner.TickerFunc(func(dt float64) {
		s.Cycle.Update(dt)
		s.Notifier.Advance(dt)
	}), runner.IntervalForRate(cfg.Cycle.TickRate), nil, logger.Log)

	errCh := make(chan error, 1)
	if s.Observer != nil {
		go func() {
			err := s.Observer.ListenAndServe(ctx, cfg.Observer.Addr)
			if err != nil {
				stop()
			}
			errCh <- err
		}()
	}

	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if s.Observer != nil {
		return <-errCh
	}
	return nil
}
