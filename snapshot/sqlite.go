// Package snapshot writes a pipeline Result out for the presentation
// layer: CSV files or a SQLite database. The pipeline itself keeps no
// state; a snapshot is a read-only artifact of one run.
package snapshot

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/traderpulse/pipeline"
)

// SQLite writes result snapshots into a SQLite file.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) a snapshot database.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// WriteResult inserts all tables of one run atomically.
func (s *SQLite) WriteResult(res *pipeline.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, created, sentiment_days, trades, daily_rows, profiles, freq_q33, freq_q67)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID, time.Now().UTC(), len(res.Sentiment), len(res.Trades),
		len(res.Daily), len(res.Profiles),
		res.FrequencyThresholds.Q33, res.FrequencyThresholds.Q67,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	sent, err := tx.Prepare(`INSERT INTO sentiment (run_id, date, sentiment) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer sent.Close()
	for _, rec := range res.Sentiment {
		if _, err := sent.Exec(res.RunID, rec.Date.String(), string(rec.Sentiment)); err != nil {
			return fmt.Errorf("insert sentiment: %w", err)
		}
	}

	trade, err := tx.Prepare(`
		INSERT INTO trades
		(run_id, account, timestamp_ms, date, side, closed_pnl, size_usd, start_position, sentiment, is_win, is_long, abs_size, leverage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer trade.Close()
	for _, t := range res.Trades {
		_, err := trade.Exec(res.RunID, t.Account, t.TimestampMs, t.Date.String(),
			string(t.Side), t.ClosedPnl, t.SizeUSD, t.StartPosition,
			string(t.Sentiment), t.IsWin, t.IsLong, t.AbsSize, t.Leverage)
		if err != nil {
			return fmt.Errorf("insert trade: %w", err)
		}
	}

	daily, err := tx.Prepare(`
		INSERT INTO daily_metrics
		(run_id, account, date, sentiment, daily_pnl, avg_pnl_per_trade, num_trades, win_rate, avg_trade_size, avg_leverage, long_ratio)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer daily.Close()
	for _, d := range res.Daily {
		_, err := daily.Exec(res.RunID, d.Account, d.Date.String(), string(d.Sentiment),
			d.DailyPnl, d.AvgPnlPerTrade, d.NumTrades, d.WinRate,
			d.AvgTradeSize, d.AvgLeverage, d.LongRatio)
		if err != nil {
			return fmt.Errorf("insert daily metric: %w", err)
		}
	}

	profile, err := tx.Prepare(`
		INSERT INTO trader_profiles
		(run_id, account, total_pnl, avg_daily_pnl, pnl_volatility, avg_win_rate, win_rate_std, avg_leverage, total_trades, avg_daily_trades, avg_trade_size, leverage_segment, frequency_segment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer profile.Close()
	for _, p := range res.Profiles {
		_, err := profile.Exec(res.RunID, p.Account, p.TotalPnl, p.AvgDailyPnl,
			p.PnlVolatility, p.AvgWinRate, p.WinRateStd, p.AvgLeverage,
			p.TotalTrades, p.AvgDailyTrades, p.AvgTradeSize,
			string(p.LeverageSegment), string(p.FrequencySegment))
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
