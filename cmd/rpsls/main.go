package main

import (
	"context"
	"fmt"
	"os"

	"rpsls/internal/config"
	"rpsls/internal/console"
	"rpsls/internal/game"
	"rpsls/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(console.ExitFailure)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	if _, err := console.Run(context.Background(), os.Stdin, os.Stdout, game.CryptoSource{}, cfg.OpponentRange()); err != nil {
		logger.Error("round aborted", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(console.ExitCode(err))
	}
}
