package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpapi "haunted-house-be/internal/api/http"
	"haunted-house-be/internal/api/ws"
	"haunted-house-be/internal/config"
	"haunted-house-be/internal/content"
	"haunted-house-be/internal/game"
	"haunted-house-be/internal/store"
)

var configPath = flag.String("config", "", "path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	fs := store.NewFileStore(cfg.DataDir, logger)
	engine := game.NewEngine(cfg, content.Default(), fs, logger, nil)
	hub := ws.NewHub(engine, logger)
	r := httpapi.NewRouter(engine, hub)

	logger.Info("server listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("data_dir", cfg.DataDir),
	)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func initLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
