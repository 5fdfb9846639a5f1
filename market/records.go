package market

// SentimentRecord is one day of the fear/greed index after the 5-class
// label has been collapsed. Exactly one record exists per date.
type SentimentRecord struct {
	Date      Date      `csv:"date"`
	Sentiment Sentiment `csv:"sentiment"`
}

// TradeRecord is a cleaned closing trade. Records with a Closed PnL of
// exactly zero never make it into one of these.
type TradeRecord struct {
	Account       string  `csv:"account"`
	TimestampMs   int64   `csv:"timestamp_ms"`
	Date          Date    `csv:"date"`
	Side          Side    `csv:"side"`
	ClosedPnl     float64 `csv:"closed_pnl"`
	SizeUSD       float64 `csv:"size_usd"`
	StartPosition float64 `csv:"start_position"`
}

// JoinedTrade is a TradeRecord joined to its date's sentiment regime and
// enriched with the derived per-trade features.
type JoinedTrade struct {
	TradeRecord
	Sentiment Sentiment `csv:"sentiment"`
	IsWin     bool      `csv:"is_win"`
	IsLong    bool      `csv:"is_long"`
	AbsSize   float64   `csv:"abs_size"`
	Leverage  NullFloat `csv:"leverage"`
}

// DailyMetric aggregates one account's trades on one date under one
// sentiment regime. Key: (Account, Date, Sentiment), unique.
type DailyMetric struct {
	Account        string    `csv:"account"`
	Date           Date      `csv:"date"`
	Sentiment      Sentiment `csv:"sentiment"`
	DailyPnl       float64   `csv:"daily_pnl"`
	AvgPnlPerTrade float64   `csv:"avg_pnl_per_trade"`
	NumTrades      int       `csv:"num_trades"`
	WinRate        float64   `csv:"win_rate"`
	AvgTradeSize   float64   `csv:"avg_trade_size"`
	AvgLeverage    NullFloat `csv:"avg_leverage"`
	LongRatio      float64   `csv:"long_ratio"`
}

// SegmentedDailyMetric is a DailyMetric with its account's segment labels
// broadcast onto it. This is the table the presentation layer filters.
type SegmentedDailyMetric struct {
	DailyMetric
	LeverageSegment  LeverageSegment  `csv:"leverage_segment"`
	FrequencySegment FrequencySegment `csv:"frequency_segment"`
}

// TraderProfile is one account's lifetime profile over its daily metrics.
// Key: Account, unique.
type TraderProfile struct {
	Account          string           `csv:"account"`
	TotalPnl         float64          `csv:"total_pnl"`
	AvgDailyPnl      float64          `csv:"avg_daily_pnl"`
	PnlVolatility    NullFloat        `csv:"pnl_volatility"`
	AvgWinRate       float64          `csv:"avg_win_rate"`
	WinRateStd       NullFloat        `csv:"win_rate_std"`
	AvgLeverage      NullFloat        `csv:"avg_leverage"`
	TotalTrades      int              `csv:"total_trades"`
	AvgDailyTrades   float64          `csv:"avg_daily_trades"`
	AvgTradeSize     float64          `csv:"avg_trade_size"`
	LeverageSegment  LeverageSegment  `csv:"leverage_segment"`
	FrequencySegment FrequencySegment `csv:"frequency_segment"`
}
