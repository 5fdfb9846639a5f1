package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/traderpulse/market"
	"github.com/rustyeddy/traderpulse/pipeline"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Render the segment-enriched daily metrics table",
	Long: `Run the pipeline and print daily metrics with segment labels,
optionally filtered. Each filter flag may repeat; omitting a flag leaves
that dimension unrestricted.

Examples:
  traderpulse daily
  traderpulse daily --sentiment fear --sentiment greed
  traderpulse daily --leverage high --frequency low`,
	RunE: runDaily,
}

var (
	dailySentiments []string
	dailyLeverage   []string
	dailyFrequency  []string
	dailyLimit      int
)

func init() {
	rootCmd.AddCommand(dailyCmd)

	dailyCmd.Flags().StringSliceVar(&dailySentiments, "sentiment", nil, "sentiment regimes: fear, neutral, greed")
	dailyCmd.Flags().StringSliceVar(&dailyLeverage, "leverage", nil, "leverage segments: low, medium, high")
	dailyCmd.Flags().StringSliceVar(&dailyFrequency, "frequency", nil, "frequency segments: low, medium, high")
	dailyCmd.Flags().IntVar(&dailyLimit, "limit", 0, "print at most this many rows (0 prints all)")
}

func runDaily(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter()
	if err != nil {
		return err
	}

	opts, _, err := pipelineOptions()
	if err != nil {
		return err
	}
	res, err := pipeline.Run(opts)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	rows := pipeline.ApplyFilter(res.DailySegmented, filter)
	if dailyLimit > 0 && len(rows) > dailyLimit {
		rows = rows[:dailyLimit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tDATE\tSENTIMENT\tPNL\tTRADES\tWIN RATE\tLEVERAGE\tLEV SEG\tFREQ SEG")
	for _, r := range rows {
		lev := "n/a"
		if r.AvgLeverage.Valid {
			lev = fmt.Sprintf("%.2fx", r.AvgLeverage.Float64)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%.2f\t%s\t%s\t%s\n",
			shortAccount(r.Account), r.Date, r.Sentiment, r.DailyPnl,
			r.NumTrades, r.WinRate, lev, r.LeverageSegment, r.FrequencySegment)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d of %d rows\n", len(rows), len(res.DailySegmented))
	return nil
}

// buildFilter translates the repeatable filter flags into the explicit
// per-dimension selections; an absent flag means "All" for that dimension.
func buildFilter() (pipeline.Filter, error) {
	var f pipeline.Filter

	if len(dailySentiments) > 0 {
		var vals []market.Sentiment
		for _, s := range dailySentiments {
			v, err := market.ParseSentiment(s)
			if err != nil {
				return f, err
			}
			vals = append(vals, v)
		}
		f.Sentiments = pipeline.OneOf(vals...)
	}

	if len(dailyLeverage) > 0 {
		var vals []market.LeverageSegment
		for _, s := range dailyLeverage {
			v, err := parseLeverageBand(s)
			if err != nil {
				return f, err
			}
			vals = append(vals, v)
		}
		f.Leverage = pipeline.OneOf(vals...)
	}

	if len(dailyFrequency) > 0 {
		var vals []market.FrequencySegment
		for _, s := range dailyFrequency {
			v, err := parseFrequencyBand(s)
			if err != nil {
				return f, err
			}
			vals = append(vals, v)
		}
		f.Frequency = pipeline.OneOf(vals...)
	}

	return f, nil
}

func parseLeverageBand(s string) (market.LeverageSegment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return market.LeverageLow, nil
	case "medium":
		return market.LeverageMedium, nil
	case "high":
		return market.LeverageHigh, nil
	}
	return "", fmt.Errorf("unknown leverage segment %q (want low, medium or high)", s)
}

func parseFrequencyBand(s string) (market.FrequencySegment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return market.FrequencyLow, nil
	case "medium":
		return market.FrequencyMedium, nil
	case "high":
		return market.FrequencyHigh, nil
	}
	return "", fmt.Errorf("unknown frequency segment %q (want low, medium or high)", s)
}

// shortAccount trims long wallet-style account IDs for terminal output.
func shortAccount(a string) string {
	if len(a) <= 12 {
		return a
	}
	return a[:10] + ".."
}
