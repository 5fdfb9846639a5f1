package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/traderpulse/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline and print an overview",
	Long: `Load both feeds, run every stage of the pipeline, and print the
overview block: trader and trade counts, mean win rate, mean leverage,
total PnL, and the daily-row distribution across sentiment regimes.

Example:
  traderpulse run --sentiment-file data/fear_greed_index.csv --trades-file data/historical_data.csv`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	opts, _, err := pipelineOptions()
	if err != nil {
		return err
	}

	res, err := pipeline.Run(opts)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	fmt.Println(res)
	fmt.Println()

	summary := pipeline.Summarize(res.DailySegmented, len(res.Profiles))
	summary.Print(os.Stdout)

	fmt.Println()
	fmt.Printf("Frequency tertiles: q33=%.4f q67=%.4f trades/day\n",
		res.FrequencyThresholds.Q33, res.FrequencyThresholds.Q67)
	return nil
}
