package metrics

import "github.com/rustyeddy/traderpulse/market"

// FrequencyThresholds are the data-driven tertile boundaries on average
// daily trades, recomputed from the full profile population on every load.
type FrequencyThresholds struct {
	Q33 float64
	Q67 float64
}

// LeverageSegmentOf classifies a lifetime average leverage against the
// fixed 5x/10x thresholds. Ties at a boundary fall to the lower band, and
// an undefined average classifies as Low, matching the reference behavior
// for accounts with no computable leverage.
func LeverageSegmentOf(avgLeverage market.NullFloat) market.LeverageSegment {
	switch {
	case avgLeverage.Valid && avgLeverage.Float64 > 10:
		return market.LeverageHigh
	case avgLeverage.Valid && avgLeverage.Float64 > 5:
		return market.LeverageMedium
	default:
		return market.LeverageLow
	}
}

// FrequencySegmentOf classifies against the tertile boundaries. The bands
// are exclusive-high: a value exactly at Q67 is Medium, exactly at Q33 is
// Low.
func FrequencySegmentOf(avgDailyTrades float64, th FrequencyThresholds) market.FrequencySegment {
	switch {
	case avgDailyTrades > th.Q67:
		return market.FrequencyHigh
	case avgDailyTrades > th.Q33:
		return market.FrequencyMedium
	default:
		return market.FrequencyLow
	}
}

// AssignSegments computes the frequency tertiles over all profiles and
// stamps both segment labels onto every profile in place. Every account
// ends up in exactly one band per dimension.
func AssignSegments(profiles []market.TraderProfile) FrequencyThresholds {
	if len(profiles) == 0 {
		return FrequencyThresholds{}
	}

	freq := make([]float64, len(profiles))
	for i, p := range profiles {
		freq[i] = p.AvgDailyTrades
	}
	th := FrequencyThresholds{
		Q33: Quantile(0.33, freq),
		Q67: Quantile(0.67, freq),
	}

	for i := range profiles {
		profiles[i].LeverageSegment = LeverageSegmentOf(profiles[i].AvgLeverage)
		profiles[i].FrequencySegment = FrequencySegmentOf(profiles[i].AvgDailyTrades, th)
	}
	return th
}

// BroadcastSegments projects each account's segment labels onto its daily
// metric rows. Pure key-based enrichment: row counts are preserved.
func BroadcastSegments(daily []market.DailyMetric, profiles []market.TraderProfile) []market.SegmentedDailyMetric {
	byAccount := make(map[string]market.TraderProfile, len(profiles))
	for _, p := range profiles {
		byAccount[p.Account] = p
	}

	out := make([]market.SegmentedDailyMetric, len(daily))
	for i, d := range daily {
		p := byAccount[d.Account]
		out[i] = market.SegmentedDailyMetric{
			DailyMetric:      d,
			LeverageSegment:  p.LeverageSegment,
			FrequencySegment: p.FrequencySegment,
		}
	}
	return out
}
