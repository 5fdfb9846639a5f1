package pipeline

import (
	"math"

	"github.com/rustyeddy/traderpulse/market"
)

const (
	leverageFloor = 1
	leverageCap   = 50
)

// deriveFeatures computes the per-trade derived fields. Leverage is the
// size/start-position ratio clamped to [1, 50]; with a zero start position
// it is undefined and stays out of every downstream mean.
func deriveFeatures(t market.TradeRecord, sentiment market.Sentiment) market.JoinedTrade {
	j := market.JoinedTrade{
		TradeRecord: t,
		Sentiment:   sentiment,
		IsWin:       t.ClosedPnl > 0,
		IsLong:      t.Side == market.Buy,
		AbsSize:     math.Abs(t.SizeUSD),
	}
	if t.StartPosition != 0 {
		lev := t.SizeUSD / t.StartPosition
		if lev < leverageFloor {
			lev = leverageFloor
		} else if lev > leverageCap {
			lev = leverageCap
		}
		j.Leverage = market.Float(lev)
	}
	return j
}
