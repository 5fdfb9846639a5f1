// Package pipeline runs the full trader-sentiment computation: ingest the
// two feeds, join trades to daily regimes, aggregate daily metrics, build
// lifetime profiles, and assign segments. Everything is recomputed in full
// on each load; the tables in a Result are immutable once built.
package pipeline

import (
	"fmt"

	"github.com/rustyeddy/traderpulse/feed"
	"github.com/rustyeddy/traderpulse/market"
	"github.com/rustyeddy/traderpulse/metrics"
	"github.com/rustyeddy/traderpulse/pkg/id"
)

// Options configure a pipeline run.
type Options struct {
	SentimentPath   string
	TradesPath      string
	DuplicatePolicy feed.DuplicatePolicy
}

// Result holds the output tables of one run. Consumers only read.
type Result struct {
	RunID string

	Sentiment      []market.SentimentRecord
	Trades         []market.JoinedTrade
	Daily          []market.DailyMetric
	Profiles       []market.TraderProfile
	DailySegmented []market.SegmentedDailyMetric

	FrequencyThresholds metrics.FrequencyThresholds
}

// Run loads both feeds and computes all tables. A failed load returns no
// partial tables; the caller must treat the error as "no data available".
func Run(opts Options) (*Result, error) {
	sentiment, err := feed.LoadSentimentFile(opts.SentimentPath, opts.DuplicatePolicy)
	if err != nil {
		return nil, err
	}
	trades, err := feed.LoadTradesFile(opts.TradesPath)
	if err != nil {
		return nil, err
	}
	return Compute(sentiment, trades), nil
}

// Compute runs the in-memory stages on already-parsed records.
func Compute(sentiment []market.SentimentRecord, trades []market.TradeRecord) *Result {
	joined := joinTrades(trades, sentiment)
	daily := metrics.AggregateDaily(joined)
	profiles := metrics.BuildProfiles(daily)
	thresholds := metrics.AssignSegments(profiles)
	segmented := metrics.BroadcastSegments(daily, profiles)

	return &Result{
		RunID:               id.New(),
		Sentiment:           sentiment,
		Trades:              joined,
		Daily:               daily,
		Profiles:            profiles,
		DailySegmented:      segmented,
		FrequencyThresholds: thresholds,
	}
}

func (r *Result) String() string {
	return fmt.Sprintf("run %s: %d sentiment days, %d trades, %d daily rows, %d profiles",
		r.RunID, len(r.Sentiment), len(r.Trades), len(r.Daily), len(r.Profiles))
}
