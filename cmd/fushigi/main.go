package main

import (
	"fmt"
	"os"
	"runtime"

	"fushigi/internal/app"
	"fushigi/internal/config"
	"fushigi/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration failed: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)
	log.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	log.Info("Main", "terminated", nil)
}
