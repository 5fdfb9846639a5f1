package snapshot

// Schema for the SQLite snapshot consumed by the dashboard. Every table is
// keyed by run so successive exports into the same file stay distinct; the
// daily_with_segments view reproduces the segment-enriched daily table.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	sentiment_days INTEGER NOT NULL,
	trades INTEGER NOT NULL,
	daily_rows INTEGER NOT NULL,
	profiles INTEGER NOT NULL,
	freq_q33 REAL NOT NULL,
	freq_q67 REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS sentiment (
	run_id TEXT NOT NULL,
	date TEXT NOT NULL,
	sentiment TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	run_id TEXT NOT NULL,
	account TEXT NOT NULL,
	timestamp_ms INTEGER NOT NULL,
	date TEXT NOT NULL,
	side TEXT NOT NULL,
	closed_pnl REAL NOT NULL,
	size_usd REAL NOT NULL,
	start_position REAL NOT NULL,
	sentiment TEXT NOT NULL,
	is_win INTEGER NOT NULL,
	is_long INTEGER NOT NULL,
	abs_size REAL NOT NULL,
	leverage REAL
);

CREATE TABLE IF NOT EXISTS daily_metrics (
	run_id TEXT NOT NULL,
	account TEXT NOT NULL,
	date TEXT NOT NULL,
	sentiment TEXT NOT NULL,
	daily_pnl REAL NOT NULL,
	avg_pnl_per_trade REAL NOT NULL,
	num_trades INTEGER NOT NULL,
	win_rate REAL NOT NULL,
	avg_trade_size REAL NOT NULL,
	avg_leverage REAL,
	long_ratio REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS trader_profiles (
	run_id TEXT NOT NULL,
	account TEXT NOT NULL,
	total_pnl REAL NOT NULL,
	avg_daily_pnl REAL NOT NULL,
	pnl_volatility REAL,
	avg_win_rate REAL NOT NULL,
	win_rate_std REAL,
	avg_leverage REAL,
	total_trades INTEGER NOT NULL,
	avg_daily_trades REAL NOT NULL,
	avg_trade_size REAL NOT NULL,
	leverage_segment TEXT NOT NULL,
	frequency_segment TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_daily_run_account ON daily_metrics(run_id, account);
CREATE INDEX IF NOT EXISTS idx_profiles_run_account ON trader_profiles(run_id, account);

CREATE VIEW IF NOT EXISTS daily_with_segments AS
SELECT d.*, p.leverage_segment, p.frequency_segment
FROM daily_metrics d
JOIN trader_profiles p ON p.run_id = d.run_id AND p.account = d.account;
`
