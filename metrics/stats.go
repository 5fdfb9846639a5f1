// Package metrics turns joined trades into the aggregate tables: daily
// metrics per (account, date, sentiment), lifetime trader profiles, and
// segment assignments.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rustyeddy/traderpulse/market"
)

// Mean is the arithmetic mean, NaN on empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// SampleStd is the sample standard deviation (n-1 denominator). It is
// undefined for fewer than two points.
func SampleStd(xs []float64) market.NullFloat {
	if len(xs) < 2 {
		return market.NoValue
	}
	return market.Float(stat.StdDev(xs, nil))
}

// MeanValid averages only the defined entries, undefined if there are none.
func MeanValid(xs []market.NullFloat) market.NullFloat {
	var sum float64
	var n int
	for _, x := range xs {
		if x.Valid {
			sum += x.Float64
			n++
		}
	}
	if n == 0 {
		return market.NoValue
	}
	return market.Float(sum / float64(n))
}

// Quantile computes the p-th quantile (0 <= p <= 1) by linear interpolation
// between order statistics, the same method the reference pipeline's
// quantile call uses. gonum's Quantile offers empirical and cumulant-based
// interpolations but not this one, so it is implemented here. Input need
// not be sorted; it is not modified.
func Quantile(p float64, xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
