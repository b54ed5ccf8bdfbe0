package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/types"
	"github.com/aaronwald/indexstats/internal/utils"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize index families by tier",
	Long: `Group every index into its family and report document counts, sizes,
shard counts and average shard size for the hot and warm tiers.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	addSourceFlags(summaryCmd)
	addOutputFlag(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
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

	result, err := svc.GetIndexSummary(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output == outputJSON {
		if result.Indices == nil {
			result.Indices = []types.FamilySummary{}
		}
		return writeJSON(out, result)
	}

	printFamilies(out, result.Indices)
	fmt.Fprintln(out)
	printTiers(out, result.Tiers)
	return nil
}

func printFamilies(out io.Writer, families []types.FamilySummary) {
	if len(families) == 0 {
		fmt.Fprintln(out, "No indices found.")
		return
	}

	tp := utils.NewTablePrinterTo(out)
	tp.Header("FAMILY", "TYPE", "PERIOD", "INDICES", "DOCS", "HOT", "WARM", "TOTAL", "SHARDS", "AVG SHARD", "NOTES")
	for _, f := range families {
		tp.Row(
			f.Name,
			f.Type,
			orDash(f.TimePeriod),
			utils.Count(f.Total.Count),
			utils.Count(f.Total.Docs),
			utils.Bytes(f.Hot.TotalSize),
			utils.Bytes(f.Warm.TotalSize),
			utils.Bytes(f.Total.TotalSize),
			utils.Count(f.Total.Shards),
			utils.OptionalBytes(f.Total.AverageShard),
			orDash(strings.Join(f.Anomalies, ",")),
		)
	}
	tp.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
