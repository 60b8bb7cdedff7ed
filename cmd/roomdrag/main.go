package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"room3d/internal/config"
	"room3d/internal/game"
	"room3d/internal/logging"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// Relative paths resolve against the working directory the user
	// launched from, so settle them before moving to the executable.
	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.ResolvePaths()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting",
		zap.String("config", *configPath),
		zap.String("layout", cfg.Layout),
		zap.Bool("drag", cfg.Drag.Enabled),
	)
	game.New(cfg, log).Run()
}
