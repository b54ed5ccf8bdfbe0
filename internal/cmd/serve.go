package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/api"
	"github.com/aaronwald/indexstats/internal/cluster"
	"github.com/aaronwald/indexstats/internal/family"
	"github.com/aaronwald/indexstats/internal/logging"
	"github.com/aaronwald/indexstats/internal/observability"
	"github.com/aaronwald/indexstats/internal/summary"
	"github.com/aaronwald/indexstats/internal/types"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve index family and tier summaries over HTTP.

Endpoints:
  GET /indices        - family summaries plus tier totals
  GET /tier?tier=hot  - tier totals, optionally one tier
  GET /health         - liveness
  GET /metrics        - Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var listenAddr string

func init() {
	addSourceFlags(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default: config listen or "+types.DefaultListen+")")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Listen = listenAddr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return RunServer(ctx, cfg, logging.New(cfg.Log, os.Stderr))
}

// NewHandler wires provider, service, metrics and routes for cfg.
// Metrics are registered on reg, which also backs /metrics.
func NewHandler(cfg *types.Config, reg *prometheus.Registry, logger *slog.Logger) (http.Handler, error) {
	provider, err := cluster.NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetrics(reg)
	svc := summary.NewService(provider, family.Options{StrictShards: cfg.StrictShards}, metrics, logger)
	return api.NewServer(svc, reg, logger), nil
}

// RunServer serves the API on cfg.Listen until ctx is cancelled, then
// drains in-flight requests.
func RunServer(ctx context.Context, cfg *types.Config, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, err := NewHandler(cfg, reg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           http.TimeoutHandler(handler, cfg.Timeout, `{"error":"request timed out"}`),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		source := "elasticsearch"
		if cfg.Snapshot != "" {
			source = "snapshot:" + cfg.Snapshot
		}
		logger.Info("indexstats listening", "addr", cfg.Listen, "source", source)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", cfg.Listen, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ServeCommand returns the serve command for registration
func ServeCommand() *cobra.Command {
	return serveCmd
}
