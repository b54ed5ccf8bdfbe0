package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/cluster"
	"github.com/aaronwald/indexstats/internal/family"
	"github.com/aaronwald/indexstats/internal/logging"
	"github.com/aaronwald/indexstats/internal/summary"
	"github.com/aaronwald/indexstats/internal/types"
	"github.com/aaronwald/indexstats/internal/utils"
)

// DefaultConfigFile is looked up in the working directory when --config is unset
const DefaultConfigFile = "indexstats.yaml"

// Output formats accepted by --output
const (
	outputText = "text"
	outputJSON = "json"
)

// Flags shared by every command that reads cluster data
var (
	configPath  string
	snapshotDir string
	output      string
)

func addSourceFlags(c *cobra.Command) {
	c.Flags().StringVar(&configPath, "config", "", "Config file (default: ./"+DefaultConfigFile+" if present)")
	c.Flags().StringVar(&snapshotDir, "snapshot", "", "Read saved payloads from this directory instead of the cluster")
}

func addOutputFlag(c *cobra.Command) {
	c.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text or json")
}

// getBaseDir returns the current working directory or an error
func getBaseDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return cwd, nil
}

// resolveConfigPath returns the explicit --config value, or the default file
// in the working directory when it exists, or "" for built-in defaults.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	cwd, err := getBaseDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(cwd, DefaultConfigFile)
	if utils.CheckFileExists(path) {
		return path, nil
	}
	return "", nil
}

// loadConfig layers file, environment and flags, then validates
func loadConfig() (*types.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := types.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if snapshotDir != "" {
		cfg.Snapshot = snapshotDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService builds the summary service for one CLI invocation. CLI runs do
// not register metrics.
func newService(cfg *types.Config, logger *slog.Logger) (*summary.Service, error) {
	provider, err := cluster.NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return summary.NewService(provider, family.Options{StrictShards: cfg.StrictShards}, nil, logger), nil
}

// cliLogger writes warnings and above to stderr so tables stay clean
func cliLogger(cfg *types.Config) *slog.Logger {
	logCfg := cfg.Log
	if logCfg.Level == types.DefaultLogLevel {
		logCfg.Level = "warn"
	}
	return logging.New(logCfg, os.Stderr)
}

// commandContext returns the command's context bounded by the config timeout
func commandContext(c *cobra.Command, cfg *types.Config) (context.Context, context.CancelFunc) {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, cfg.Timeout)
}

func checkOutput() error {
	if output != outputText && output != outputJSON {
		return fmt.Errorf("unsupported output format %q (expected text or json)", output)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
