package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/traderpulse/market"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	rows := []market.SegmentedDailyMetric{
		{DailyMetric: market.DailyMetric{
			Account: "A", Date: jan(1), Sentiment: market.Fear,
			DailyPnl: 100, NumTrades: 2, WinRate: 1.0, AvgLeverage: market.Float(10),
		}},
		{DailyMetric: market.DailyMetric{
			Account: "B", Date: jan(1), Sentiment: market.Greed,
			DailyPnl: -40, NumTrades: 3, WinRate: 0.0, AvgLeverage: market.NoValue,
		}},
	}

	s := Summarize(rows, 2)
	assert.Equal(t, 2, s.TotalTraders)
	assert.Equal(t, 5, s.TotalTrades)
	assert.Equal(t, 0.5, s.AvgWinRate)
	assert.Equal(t, 60.0, s.TotalPnl)
	assert.True(t, s.AvgLeverage.Valid)
	assert.Equal(t, 10.0, s.AvgLeverage.Float64)
	assert.Equal(t, 1, s.SentimentCounts[market.Fear])
	assert.Equal(t, 1, s.SentimentCounts[market.Greed])
	assert.Equal(t, 0, s.SentimentCounts[market.Neutral])
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil, 0)
	assert.Equal(t, 0, s.TotalTrades)
	assert.False(t, s.AvgLeverage.Valid)
}

func TestSummaryPrint(t *testing.T) {
	t.Parallel()

	s := Summary{
		TotalTraders:    3,
		TotalTrades:     12,
		AvgWinRate:      0.42,
		AvgLeverage:     market.Float(7.5),
		TotalPnl:        123.45,
		SentimentCounts: map[market.Sentiment]int{market.Fear: 4},
	}

	var sb strings.Builder
	s.Print(&sb)
	out := sb.String()
	assert.Contains(t, out, "Traders:       3")
	assert.Contains(t, out, "42.0%")
	assert.Contains(t, out, "7.5x")
	assert.Contains(t, out, "Fear")
}
