// Package main shows the day/night cycle on a terminal dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/config"
	"github.com/Faultbox/leaf-daycycle/internal/logger"
	"github.com/Faultbox/leaf-daycycle/internal/runner"
	"github.com/Faultbox/leaf-daycycle/internal/sim"
	"github.com/Faultbox/leaf-daycycle/internal/tui"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the dashboard, so logs only go to a file.
	logFile := cfg.Logging.LogFile
	if logFile == "" {
		logFile = "daycycle-tui.log"
	}
	logger.Install(logger.New(logger.Options{
		Level: cfg.Logging.Level,
		File:  logger.DefaultFileConfig(logFile),
	}))
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("dashboard error", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := tui.NewApp(screen, s.Cycle, s.Notifier, s.Garden, logger.Log)
	r := runner.New(app, runner.IntervalForRate(cfg.Cycle.TickRate), nil, logger.Log)
	app.Attach(r)
	app.Redraw()

	go app.HandleEvents(ctx, screen, cancel)

	if s.Observer != nil {
		go func() {
			if err := s.Observer.ListenAndServe(ctx, cfg.Observer.Addr); err != nil {
				logger.Error("observer stopped", zap.Error(err))
			}
		}()
	}

	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
