package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/rustyeddy/traderpulse/market"
)

// tradeRow is the raw shape of one trade record. The historical feed
// carries more columns (coin, execution price, fees, hashes); only the six
// the pipeline needs are decoded.
type tradeRow struct {
	Account       string  `csv:"Account"`
	Timestamp     int64   `csv:"Timestamp"`
	Side          string  `csv:"Side"`
	ClosedPnl     float64 `csv:"Closed PnL"`
	SizeUSD       float64 `csv:"Size USD"`
	StartPosition float64 `csv:"Start Position"`
}

var tradeColumns = []string{"Account", "Timestamp", "Side", "Closed PnL", "Size USD", "Start Position"}

// ReadTrades parses the trade feed, derives each trade's UTC calendar date
// from the epoch-milliseconds timestamp, and drops non-closing records.
// The exclusion test is exact equality with zero: a PnL that differs from
// zero only by floating noise still counts as a closing trade.
func ReadTrades(r io.Reader) ([]market.TradeRecord, error) {
	hr := newHeaderReader("trade", csv.NewReader(r), func(s string) string { return s }, tradeColumns)

	var rows []*tradeRow
	if err := gocsv.UnmarshalCSV(hr, &rows); err != nil {
		return nil, fmt.Errorf("parse trade feed: %w", err)
	}

	out := make([]market.TradeRecord, 0, len(rows))
	for _, row := range rows {
		if row.ClosedPnl == 0 {
			continue
		}
		side, err := market.ParseSide(row.Side)
		if err != nil {
			return nil, fmt.Errorf("parse trade feed: %w", err)
		}
		out = append(out, market.TradeRecord{
			Account:       row.Account,
			TimestampMs:   row.Timestamp,
			Date:          market.DateOfMillis(row.Timestamp),
			Side:          side,
			ClosedPnl:     row.ClosedPnl,
			SizeUSD:       row.SizeUSD,
			StartPosition: row.StartPosition,
		})
	}
	return out, nil
}

// LoadTradesFile reads the trade feed from disk.
func LoadTradesFile(path string) ([]market.TradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trade feed: %w", err)
	}
	defer f.Close()
	return ReadTrades(f)
}
