package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"parkease/internal/infra/db"
	"parkease/internal/pkg/config"
	"parkease/migrations"
)

func main() {
	direction := flag.String("direction", "up", "up applies pending migrations, down rolls back the latest one")
	flag.Parse()

	if err := run(*direction); err != nil {
		slog.Error("migration failed", "direction", *direction, "error", err)
		os.Exit(1)
	}
	slog.Info("migration finished", "direction", *direction)
}

func run(direction string) error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if direction == "down" {
		return migrations.Down(ctx, pool)
	}
	return migrations.Up(ctx, pool)
}
