package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/types"
	"github.com/aaronwald/indexstats/internal/utils"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show cluster-wide totals per tier",
	Args:  cobra.NoArgs,
	RunE:  runTiers,
}

var tierFilter string

func init() {
	addSourceFlags(tiersCmd)
	addOutputFlag(tiersCmd)
	tiersCmd.Flags().StringVar(&tierFilter, "tier", "", "Only show this tier (hot or warm)")
}

func runTiers(cmd *cobra.Command, args []string) error {
	if err := checkOutput(); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newService(cfg, cliLogger(cfg))
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd, cfg)
	defer cancel()

	result, err := svc.GetTierSummary(ctx, tierFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output == outputJSON {
		return writeJSON(out, result)
	}
	printTiers(out, result)
	return nil
}

func printTiers(out io.Writer, tiers types.ClusterTierSummary) {
	var rows []*types.TierTotals
	for _, name := range types.Tiers {
		if t := tiers.Tier(name); t != nil {
			rows = append(rows, t)
		}
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "No tiers found.")
		return
	}

	tp := utils.NewTablePrinterTo(out)
	tp.Header("TIER", "INDICES", "DOCS", "PRIMARY", "TOTAL", "SHARDS")
	for _, t := range rows {
		tp.Row(
			t.Name,
			utils.Count(t.Count),
			utils.Count(t.Docs),
			utils.Bytes(t.PriSize),
			utils.Bytes(t.TotalSize),
			utils.Count(t.Shards),
		)
	}
	tp.Flush()
}

// TiersCommand returns the tiers command for registration
func TiersCommand() *cobra.Command {
	return tiersCmd
}

// SummaryCommand returns the summary command for registration
func SummaryCommand() *cobra.Command {
	return summaryCmd
}
