package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/traderpulse/market"
)

func segRow(sentiment market.Sentiment, lev market.LeverageSegment, freq market.FrequencySegment) market.SegmentedDailyMetric {
	return market.SegmentedDailyMetric{
		DailyMetric:      market.DailyMetric{Account: "A", Date: jan(1), Sentiment: sentiment},
		LeverageSegment:  lev,
		FrequencySegment: freq,
	}
}

func TestZeroFilterMatchesEverything(t *testing.T) {
	t.Parallel()

	rows := []market.SegmentedDailyMetric{
		segRow(market.Fear, market.LeverageLow, market.FrequencyLow),
		segRow(market.Greed, market.LeverageHigh, market.FrequencyHigh),
	}
	assert.Equal(t, rows, ApplyFilter(rows, Filter{}))
}

func TestFilterSingleDimension(t *testing.T) {
	t.Parallel()

	rows := []market.SegmentedDailyMetric{
		segRow(market.Fear, market.LeverageLow, market.FrequencyLow),
		segRow(market.Neutral, market.LeverageLow, market.FrequencyLow),
		segRow(market.Greed, market.LeverageLow, market.FrequencyLow),
	}
	f := Filter{Sentiments: OneOf(market.Fear, market.Greed)}

	got := ApplyFilter(rows, f)
	assert.Len(t, got, 2)
	assert.Equal(t, market.Fear, got[0].Sentiment)
	assert.Equal(t, market.Greed, got[1].Sentiment)
}

func TestFilterConjunction(t *testing.T) {
	t.Parallel()

	rows := []market.SegmentedDailyMetric{
		segRow(market.Fear, market.LeverageHigh, market.FrequencyLow),
		segRow(market.Fear, market.LeverageLow, market.FrequencyLow),
		segRow(market.Greed, market.LeverageHigh, market.FrequencyLow),
	}
	f := Filter{
		Sentiments: OneOf(market.Fear),
		Leverage:   OneOf(market.LeverageHigh),
	}

	got := ApplyFilter(rows, f)
	assert.Len(t, got, 1)
	assert.Equal(t, market.Fear, got[0].Sentiment)
	assert.Equal(t, market.LeverageHigh, got[0].LeverageSegment)
}

func TestSelectionZeroValueIsUnrestricted(t *testing.T) {
	t.Parallel()

	var s Selection[market.Sentiment]
	assert.False(t, s.Restricted())
	assert.True(t, s.Contains(market.Fear))

	s = OneOf(market.Greed)
	assert.True(t, s.Restricted())
	assert.True(t, s.Contains(market.Greed))
	assert.False(t, s.Contains(market.Fear))
}
