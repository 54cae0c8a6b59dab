package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/app"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/config"
)

const (
	envDev   = "dev"
	envProd  = "prod"
	envLocal = "local"
)

func main() {
	cfg := config.MustLoad()

	fmt.Println(`
  ______ ____  _    _ _____    _______ ____    _______ _    _ ______   ______ _      ____   ____  _____
 |  ____/ __ \| |  | |  __ \  |__   __/ __ \  |__   __| |  | |  ____| |  ____| |    / __ \ / __ \|  __ \
 | |__ | |  | | |  | | |__) |    | | | |  | |    | |  | |__| | |__    | |__  | |   | |  | | |  | | |__) |
 |  __|| |  | | |  | |  _  /     | | | |  | |    | |  |  __  |  __|   |  __| | |   | |  | | |  | |  _  /
 | |   | |__| | |__| | | \ \     | | | |__| |    | |  | |  | | |____  | |    | |___| |__| | |__| | | \ \
 |_|    \____/ \____/|_|  \_\    |_|  \____/     |_|  |_|  |_|______| |_|    |______\____/ \____/|_|  \_\`)

	log := setupLogger(cfg.Server.Env)

	log.Info("starting four to the floor", "env", cfg.Server.Env)

	application := app.New(log, cfg)

	go application.HTTPServer.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err := application.HTTPServer.Stop(context.Background()); err != nil {
		log.Error("shutdown failed", slog.String("error", err.Error()))
		return
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envLocal:
		fallthrough
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
