package pipeline

import (
	"fmt"
	"io"

	"github.com/rustyeddy/traderpulse/market"
	"github.com/rustyeddy/traderpulse/metrics"
)

// Summary is the overview block computed over a (possibly filtered) view
// of the segmented daily table.
type Summary struct {
	TotalTraders    int
	TotalTrades     int
	AvgWinRate      float64
	AvgLeverage     market.NullFloat
	TotalPnl        float64
	SentimentCounts map[market.Sentiment]int
}

// Summarize computes the overview numbers. totalTraders is the distinct
// account count of the full (unfiltered) profile table; the remaining
// figures come from the rows given.
func Summarize(rows []market.SegmentedDailyMetric, totalTraders int) Summary {
	s := Summary{
		TotalTraders:    totalTraders,
		SentimentCounts: make(map[market.Sentiment]int),
	}

	winRates := make([]float64, 0, len(rows))
	leverages := make([]market.NullFloat, 0, len(rows))
	for _, row := range rows {
		s.TotalTrades += row.NumTrades
		s.TotalPnl += row.DailyPnl
		s.SentimentCounts[row.Sentiment]++
		winRates = append(winRates, row.WinRate)
		leverages = append(leverages, row.AvgLeverage)
	}
	if len(winRates) > 0 {
		s.AvgWinRate = metrics.Mean(winRates)
	}
	s.AvgLeverage = metrics.MeanValid(leverages)
	return s
}

// Print renders the summary as a plain text block.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trader Sentiment Overview")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Traders:       %d\n", s.TotalTraders)
	fmt.Fprintf(w, "Trades:        %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Avg Win Rate:  %.1f%%\n", s.AvgWinRate*100)
	if s.AvgLeverage.Valid {
		fmt.Fprintf(w, "Avg Leverage:  %.1fx\n", s.AvgLeverage.Float64)
	} else {
		fmt.Fprintf(w, "Avg Leverage:  n/a\n")
	}
	fmt.Fprintf(w, "Total PnL:     %.2f\n", s.TotalPnl)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Daily rows by sentiment")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, sent := range market.Sentiments {
		fmt.Fprintf(w, "%-8s %d\n", sent, s.SentimentCounts[sent])
	}
}
