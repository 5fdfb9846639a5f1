package pipeline

import "github.com/rustyeddy/traderpulse/market"

// joinTrades left-joins every cleaned trade to its date's sentiment regime
// and derives the per-trade features. The join is cardinality-preserving:
// each input trade produces exactly one output row, with Neutral as the
// regime for dates the sentiment feed does not cover. Ambiguous duplicate
// dates were already resolved or rejected at ingestion, so the lookup map
// here is single-valued by construction.
func joinTrades(trades []market.TradeRecord, sentiment []market.SentimentRecord) []market.JoinedTrade {
	byDate := make(map[market.Date]market.Sentiment, len(sentiment))
	for _, s := range sentiment {
		byDate[s.Date] = s.Sentiment
	}

	out := make([]market.JoinedTrade, len(trades))
	for i, t := range trades {
		regime, ok := byDate[t.Date]
		if !ok {
			regime = market.Neutral
		}
		out[i] = deriveFeatures(t, regime)
	}
	return out
}
