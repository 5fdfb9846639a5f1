package metrics

import (
	"sort"

	"github.com/rustyeddy/traderpulse/market"
)

// BuildProfiles groups daily metrics by account into lifetime profiles.
// Volatility columns use the sample standard deviation and stay undefined
// for accounts with fewer than two daily rows. Segment labels are not set
// here; the segmenter fills them in afterwards from the full population.
// Profiles come back sorted by account, one per distinct account.
func BuildProfiles(daily []market.DailyMetric) []market.TraderProfile {
	groups := make(map[string][]market.DailyMetric)
	for _, d := range daily {
		groups[d.Account] = append(groups[d.Account], d)
	}

	out := make([]market.TraderProfile, 0, len(groups))
	for account, rows := range groups {
		n := len(rows)
		pnl := make([]float64, n)
		winRates := make([]float64, n)
		tradeCounts := make([]float64, n)
		sizes := make([]float64, n)
		levs := make([]market.NullFloat, n)
		totalTrades := 0
		for i, d := range rows {
			pnl[i] = d.DailyPnl
			winRates[i] = d.WinRate
			tradeCounts[i] = float64(d.NumTrades)
			sizes[i] = d.AvgTradeSize
			levs[i] = d.AvgLeverage
			totalTrades += d.NumTrades
		}

		var total float64
		for _, v := range pnl {
			total += v
		}

		out = append(out, market.TraderProfile{
			Account:        account,
			TotalPnl:       total,
			AvgDailyPnl:    Mean(pnl),
			PnlVolatility:  SampleStd(pnl),
			AvgWinRate:     Mean(winRates),
			WinRateStd:     SampleStd(winRates),
			AvgLeverage:    MeanValid(levs),
			TotalTrades:    totalTrades,
			AvgDailyTrades: Mean(tradeCounts),
			AvgTradeSize:   Mean(sizes),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out
}
