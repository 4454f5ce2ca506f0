package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rune-caster/internal/config"
	"github.com/KirkDiggler/rune-caster/internal/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	restore := logging.RedirectStdLog(logger)
	defer restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &App{Config: cfg, Out: os.Stdout}
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		logger.Error("spellctl failed", zap.Error(err), zap.Strings("args", os.Args[1:]))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
