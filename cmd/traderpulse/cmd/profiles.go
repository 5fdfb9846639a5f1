package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/traderpulse/market"
	"github.com/rustyeddy/traderpulse/pipeline"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Render the lifetime trader profile table",
	Long: `Run the pipeline and print one profile row per account: lifetime
PnL, volatility, win rate, leverage, trade counts, and the assigned
leverage and frequency segments.

Example:
  traderpulse profiles --limit 20`,
	RunE: runProfiles,
}

var profilesLimit int

func init() {
	rootCmd.AddCommand(profilesCmd)

	profilesCmd.Flags().IntVar(&profilesLimit, "limit", 0, "print at most this many rows (0 prints all)")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	opts, _, err := pipelineOptions()
	if err != nil {
		return err
	}
	res, err := pipeline.Run(opts)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	rows := res.Profiles
	if profilesLimit > 0 && len(rows) > profilesLimit {
		rows = rows[:profilesLimit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tTOTAL PNL\tAVG DAILY\tVOLATILITY\tWIN RATE\tLEVERAGE\tTRADES\tTRADES/DAY\tLEV SEG\tFREQ SEG")
	for _, p := range rows {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\t%.2f\t%s\t%d\t%.2f\t%s\t%s\n",
			shortAccount(p.Account), p.TotalPnl, p.AvgDailyPnl,
			nullable(p.PnlVolatility, "%.2f"), p.AvgWinRate,
			nullable(p.AvgLeverage, "%.2fx"), p.TotalTrades, p.AvgDailyTrades,
			p.LeverageSegment, p.FrequencySegment)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d accounts\n", len(res.Profiles))
	return nil
}

func nullable(v market.NullFloat, format string) string {
	if !v.Valid {
		return "n/a"
	}
	return fmt.Sprintf(format, v.Float64)
}
