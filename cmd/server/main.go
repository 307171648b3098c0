package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"club-calendar-service/internal/config"
	"club-calendar-service/internal/logging"
	"club-calendar-service/internal/server"
)

const appVersion = "dev"

func main() {
	// A missing .env is the normal production case.
	_ = godotenv.Load()

	bootLogger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "club-calendar-service",
		Version: appVersion,
	})

	cfg := config.Load(bootLogger)
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "club-calendar-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
