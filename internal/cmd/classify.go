package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/family"
	"github.com/aaronwald/indexstats/internal/utils"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <index>...",
	Short: "Show how index names are grouped into families",
	Long: `Print the family prefix and the rollover and time-based flags derived from
each index name. No cluster access is needed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

type classifyResult struct {
	Index     string `json:"index"`
	Family    string `json:"family"`
	Rollover  bool   `json:"rollover"`
	TimeBased bool   `json:"time_based"`
}

func init() {
	addOutputFlag(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if err := checkOutput(); err != nil {
		return err
	}

	results := make([]classifyResult, 0, len(args))
	for _, name := range args {
		c := family.Classify(name)
		results = append(results, classifyResult{
			Index:     name,
			Family:    c.Prefix,
			Rollover:  c.Rollover,
			TimeBased: c.TimeBased,
		})
	}

	out := cmd.OutOrStdout()
	if output == outputJSON {
		return writeJSON(out, results)
	}

	tp := utils.NewTablePrinterTo(out)
	tp.Header("INDEX", "FAMILY", "ROLLOVER", "TIME BASED")
	for _, r := range results {
		tp.Row(r.Index, orDash(r.Family), yesNo(r.Rollover), yesNo(r.TimeBased))
	}
	tp.Flush()
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ClassifyCommand returns the classify command for registration
func ClassifyCommand() *cobra.Command {
	return classifyCmd
}
