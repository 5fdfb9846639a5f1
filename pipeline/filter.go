package pipeline

import "github.com/rustyeddy/traderpulse/market"

// Selection restricts one filter dimension to a set of values. The zero
// value is the unrestricted ("All") variant; there is no magic "All"
// string mixed into the value set.
type Selection[T comparable] struct {
	restricted bool
	set        map[T]struct{}
}

// OneOf builds a selection that admits only the listed values.
func OneOf[T comparable](values ...T) Selection[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Selection[T]{restricted: true, set: set}
}

// Contains reports whether v passes the selection.
func (s Selection[T]) Contains(v T) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.set[v]
	return ok
}

// Restricted reports whether the selection is narrower than "All".
func (s Selection[T]) Restricted() bool { return s.restricted }

// Filter is the row predicate the presentation layer applies to the
// segmented daily table: one selection per dimension, composed by
// conjunction. The zero Filter matches every row.
type Filter struct {
	Sentiments Selection[market.Sentiment]
	Leverage   Selection[market.LeverageSegment]
	Frequency  Selection[market.FrequencySegment]
}

// Match reports whether the row passes all three dimensions.
func (f Filter) Match(row market.SegmentedDailyMetric) bool {
	return f.Sentiments.Contains(row.Sentiment) &&
		f.Leverage.Contains(row.LeverageSegment) &&
		f.Frequency.Contains(row.FrequencySegment)
}

// ApplyFilter selects the rows matching f, preserving order.
func ApplyFilter(rows []market.SegmentedDailyMetric, f Filter) []market.SegmentedDailyMetric {
	out := make([]market.SegmentedDailyMetric, 0, len(rows))
	for _, row := range rows {
		if f.Match(row) {
			out = append(out, row)
		}
	}
	return out
}
