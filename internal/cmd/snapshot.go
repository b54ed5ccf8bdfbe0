package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/cluster"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <dir>",
	Short: "Save the cluster's index and settings payloads to a directory",
	Long: `Fetch _cat/indices and the routing settings from the configured cluster and
write them to <dir>. The directory can later be read with --snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: ./"+DefaultConfigFile+" if present)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Snapshot != "" {
		return fmt.Errorf("snapshot source is configured; a live cluster is required")
	}

	provider, err := cluster.NewElasticsearchProvider(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd, cfg)
	defer cancel()

	if err := provider.WriteSnapshot(ctx, dir); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Saved snapshot to", dir)
	return nil
}

// SnapshotCommand returns the snapshot command for registration
func SnapshotCommand() *cobra.Command {
	return snapshotCmd
}
