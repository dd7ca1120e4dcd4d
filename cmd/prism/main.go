// Package main is the entry point for the prism preview player.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/solar-nl/prism/internal/config"
	"github.com/solar-nl/prism/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== prism player ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	p, err := newPlayer(cfg)
	if err != nil {
		logger.Error("failed to create player", zap.Error(err))
		os.Exit(1)
	}
	defer p.Close()

	if err := p.Run(); err != nil {
		logger.Error("player error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("player closed normally")
}
