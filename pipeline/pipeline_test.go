package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/traderpulse/feed"
	"github.com/rustyeddy/traderpulse/market"
)

func jan(day int) market.Date {
	return market.Date{Year: 2024, Month: time.January, Day: day}
}

func cleanTrade(account string, date market.Date, side market.Side, pnl, size, start float64) market.TradeRecord {
	return market.TradeRecord{
		Account:       account,
		TimestampMs:   date.Time().Add(10 * time.Hour).UnixMilli(),
		Date:          date,
		Side:          side,
		ClosedPnl:     pnl,
		SizeUSD:       size,
		StartPosition: start,
	}
}

func TestComputeEndToEnd(t *testing.T) {
	t.Parallel()

	sentiment := []market.SentimentRecord{
		{Date: jan(1), Sentiment: market.Fear},
	}
	trades := []market.TradeRecord{
		cleanTrade("A", jan(1), market.Buy, 100, 1000, 100),
	}

	res := Compute(sentiment, trades)
	assert.NotEmpty(t, res.RunID)
	assert.Len(t, res.Trades, 1)

	j := res.Trades[0]
	assert.Equal(t, market.Fear, j.Sentiment)
	assert.True(t, j.IsWin)
	assert.True(t, j.IsLong)
	assert.Equal(t, 1000.0, j.AbsSize)
	assert.True(t, j.Leverage.Valid)
	assert.Equal(t, 10.0, j.Leverage.Float64)

	assert.Len(t, res.Daily, 1)
	d := res.Daily[0]
	assert.Equal(t, "A", d.Account)
	assert.Equal(t, jan(1), d.Date)
	assert.Equal(t, market.Fear, d.Sentiment)
	assert.Equal(t, 100.0, d.DailyPnl)
	assert.Equal(t, 1, d.NumTrades)
	assert.Equal(t, 1.0, d.WinRate)
	assert.Equal(t, 10.0, d.AvgLeverage.Float64)

	assert.Len(t, res.Profiles, 1)
	p := res.Profiles[0]
	assert.False(t, p.PnlVolatility.Valid) // one daily row, no stddev
	assert.Equal(t, market.LeverageMedium, p.LeverageSegment)

	assert.Len(t, res.DailySegmented, 1)
	assert.Equal(t, p.LeverageSegment, res.DailySegmented[0].LeverageSegment)
}

func TestComputeUnmatchedDateDefaultsNeutral(t *testing.T) {
	t.Parallel()

	trades := []market.TradeRecord{
		cleanTrade("A", jan(5), market.Sell, -20, 200, 100),
	}
	res := Compute(nil, trades)

	assert.Len(t, res.Trades, 1)
	assert.Equal(t, market.Neutral, res.Trades[0].Sentiment)
	assert.False(t, res.Trades[0].IsWin)
	assert.False(t, res.Trades[0].IsLong)
}

func TestComputeJoinPreservesCardinality(t *testing.T) {
	t.Parallel()

	sentiment := []market.SentimentRecord{
		{Date: jan(1), Sentiment: market.Greed},
		{Date: jan(2), Sentiment: market.Fear},
	}
	var trades []market.TradeRecord
	for day := 1; day <= 4; day++ {
		for i := 0; i < 3; i++ {
			trades = append(trades, cleanTrade("A", jan(day), market.Buy, 1, 10, 10))
		}
	}

	res := Compute(sentiment, trades)
	assert.Len(t, res.Trades, len(trades))

	// sum of daily trade counts equals the cleaned trade count
	total := 0
	for _, d := range res.Daily {
		total += d.NumTrades
	}
	assert.Equal(t, len(trades), total)
}

func TestComputeDeterministic(t *testing.T) {
	t.Parallel()

	sentiment := []market.SentimentRecord{
		{Date: jan(1), Sentiment: market.Fear},
		{Date: jan(2), Sentiment: market.Greed},
	}
	trades := []market.TradeRecord{
		cleanTrade("B", jan(2), market.Sell, -5, 100, 20),
		cleanTrade("A", jan(1), market.Buy, 100, 1000, 100),
		cleanTrade("A", jan(2), market.Buy, 7, 350, 0),
	}

	a := Compute(sentiment, trades)
	b := Compute(sentiment, trades)

	// identical inputs give identical tables; only the run ID differs
	assert.Equal(t, a.Sentiment, b.Sentiment)
	assert.Equal(t, a.Trades, b.Trades)
	assert.Equal(t, a.Daily, b.Daily)
	assert.Equal(t, a.Profiles, b.Profiles)
	assert.Equal(t, a.DailySegmented, b.DailySegmented)
	assert.Equal(t, a.FrequencyThresholds, b.FrequencyThresholds)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func writeFeedFiles(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	sentPath := filepath.Join(dir, "sentiment.csv")
	tradePath := filepath.Join(dir, "trades.csv")

	sentCSV := `date,classification
2024-01-01,Extreme Fear
2024-01-02,Greed
`
	tradeCSV := `Account,Coin,Size USD,Side,Timestamp,Start Position,Closed PnL
A,BTC,1000,BUY,1704103200000,100,100
A,BTC,500,SELL,1704189600000,100,-50
B,ETH,100,BUY,1704103200000,0,10
B,ETH,100,BUY,1704103200000,100,0
`
	assert.NoError(t, os.WriteFile(sentPath, []byte(sentCSV), 0o644))
	assert.NoError(t, os.WriteFile(tradePath, []byte(tradeCSV), 0o644))
	return sentPath, tradePath
}

func TestRunFromFiles(t *testing.T) {
	t.Parallel()

	sentPath, tradePath := writeFeedFiles(t)
	res, err := Run(Options{SentimentPath: sentPath, TradesPath: tradePath})
	assert.NoError(t, err)

	// the zero-PnL trade is gone
	assert.Len(t, res.Trades, 3)
	assert.Len(t, res.Profiles, 2)

	// account B's only trade has a zero start position: undefined leverage
	for _, p := range res.Profiles {
		if p.Account == "B" {
			assert.False(t, p.AvgLeverage.Valid)
			assert.Equal(t, market.LeverageLow, p.LeverageSegment)
		}
	}
}

func TestRunFailsWithoutPartialTables(t *testing.T) {
	t.Parallel()

	sentPath, _ := writeFeedFiles(t)
	res, err := Run(Options{SentimentPath: sentPath, TradesPath: "missing.csv"})
	assert.Error(t, err)
	assert.Nil(t, res)

	res, err = Run(Options{
		SentimentPath:   "missing.csv",
		TradesPath:      sentPath,
		DuplicatePolicy: feed.LastWins,
	})
	assert.Error(t, err)
	assert.Nil(t, res)
}
