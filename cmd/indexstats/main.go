package main

import (
	"fmt"
	"os"

	"github.com/aaronwald/indexstats/internal/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "indexstats",
	Short: "Elasticsearch index family and tier statistics",
	Long: `indexstats groups Elasticsearch indices into families by name, classifies
their lifecycle and reports hot and warm tier usage.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.SummaryCommand())
	rootCmd.AddCommand(cmd.TiersCommand())
	rootCmd.AddCommand(cmd.ClassifyCommand())
	rootCmd.AddCommand(cmd.ServeCommand())
	rootCmd.AddCommand(cmd.SnapshotCommand())
	rootCmd.AddCommand(cmd.InitCommand())
	rootCmd.AddCommand(cmd.ValidateCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
