package metrics

import (
	"sort"

	"github.com/rustyeddy/traderpulse/market"
)

type dailyKey struct {
	Account   string
	Date      market.Date
	Sentiment market.Sentiment
}

// AggregateDaily groups joined trades by (account, date, sentiment) and
// emits one DailyMetric per group. Every distinct key present in the input
// yields exactly one row; no group is dropped. Undefined leverages are left
// out of the leverage mean rather than zero-filled. Rows come back sorted
// by account, date, sentiment.
func AggregateDaily(trades []market.JoinedTrade) []market.DailyMetric {
	groups := make(map[dailyKey][]market.JoinedTrade)
	for _, t := range trades {
		k := dailyKey{Account: t.Account, Date: t.Date, Sentiment: t.Sentiment}
		groups[k] = append(groups[k], t)
	}

	out := make([]market.DailyMetric, 0, len(groups))
	for k, group := range groups {
		n := len(group)
		pnl := make([]float64, n)
		wins := make([]float64, n)
		sizes := make([]float64, n)
		longs := make([]float64, n)
		levs := make([]market.NullFloat, n)
		for i, t := range group {
			pnl[i] = t.ClosedPnl
			if t.IsWin {
				wins[i] = 1
			}
			sizes[i] = t.AbsSize
			if t.IsLong {
				longs[i] = 1
			}
			levs[i] = t.Leverage
		}

		var total float64
		for _, v := range pnl {
			total += v
		}

		out = append(out, market.DailyMetric{
			Account:        k.Account,
			Date:           k.Date,
			Sentiment:      k.Sentiment,
			DailyPnl:       total,
			AvgPnlPerTrade: Mean(pnl),
			NumTrades:      n,
			WinRate:        Mean(wins),
			AvgTradeSize:   Mean(sizes),
			AvgLeverage:    MeanValid(levs),
			LongRatio:      Mean(longs),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Account != b.Account {
			return a.Account < b.Account
		}
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.Sentiment < b.Sentiment
	})
	return out
}
