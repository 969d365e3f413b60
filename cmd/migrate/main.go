package main

import (
	"context"
	"flag"
	"fmt"

	"rpsls/internal/config"
	"rpsls/internal/db"
	"rpsls/internal/logger"
)

func main() {
	apply := flag.Bool("apply", false, "apply migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	names, err := db.MigrationNames()
	if err != nil {
		logger.Fatal("list migrations", "error", err)
	}

	if !*apply {
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL not set")
	}
	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		logger.Fatal("failed to apply migrations", "error", err)
	}
	for _, name := range names {
		fmt.Printf("applied %s\n", name)
	}
}
