// Package main opens a window showing the day/night cycle's sky and sun.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/leaf-daycycle/internal/config"
	"github.com/Faultbox/leaf-daycycle/internal/engine/window"
	"github.com/Faultbox/leaf-daycycle/internal/game"
	"github.com/Faultbox/leaf-daycycle/internal/logger"
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

	logger.Info("=== Leaf sky viewer ===")

	s, err := sim.Build(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to build simulation", zap.Error(err))
		os.Exit(1)
	}
	defer s.Close()
	if err := s.Start(); err != nil {
		logger.Error("failed to start cycle", zap.Error(err))
		os.Exit(1)
	}

	// The observer serves from its own goroutine; the cycle stays on the
	// main thread with the GL context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if s.Observer != nil {
		go func() {
			if err := s.Observer.ListenAndServe(ctx, cfg.Observer.Addr); err != nil {
				logger.Error("observer stopped", zap.Error(err))
			}
		}()
	}

	g, err := game.New(game.Options{
		Window: window.Config{
			Title:      "Leaf",
			Width:      cfg.Viewer.Width,
			Height:     cfg.Viewer.Height,
			Fullscreen: cfg.Viewer.Fullscreen,
			VSync:      cfg.Viewer.VSync,
		},
		Cycle:    s.Cycle,
		Light:    s.Light,
		Sky:      s.Sky,
		HUD:      s.HUD,
		Notifier: s.Notifier,
		Logger:   logger.Log,
	})
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}
