// cmd/indexstats-api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aaronwald/indexstats/internal/cmd"
	"github.com/aaronwald/indexstats/internal/logging"
	"github.com/aaronwald/indexstats/internal/types"
)

func main() {
	cfg := types.DefaultConfig()

	// Bootstrap logger until the configured one exists
	logger := logging.New(cfg.Log, os.Stderr)

	if path := os.Getenv("INDEXSTATS_CONFIG"); path != "" {
		loaded, err := types.LoadConfig(path)
		if err != nil {
			logger.Error("loading config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		logger.Error("reading environment", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger = logging.New(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.RunServer(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
