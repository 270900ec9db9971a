package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/relyk/tomatobot/internal/app"
	"github.com/relyk/tomatobot/internal/config"
	"github.com/relyk/tomatobot/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.EnableFileLogging(util.LogConfig{
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, "tomatobot.log", cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("tomatobot starting",
		slog.String("version", cfg.Version),
		slog.String("log_level", cfg.Logging.Level),
	)

	container, err := app.BuildContainer(cfg, logger)
	if err != nil {
		logger.Error("failed to assemble services", slog.Any("error", err))
		os.Exit(1)
	}

	b, err := container.NewBot()
	if err != nil {
		logger.Error("failed to build bot", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		logger.Error("bot exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("tomatobot stopped")
}
