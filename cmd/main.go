package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"product_viewer/internal/application"
	"product_viewer/internal/config"
	"product_viewer/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(log)

	if err = application.Run(ctx, cfg, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}
}
