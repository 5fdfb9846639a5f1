package feed

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/traderpulse/market"
)

// SchemaError reports a feed whose header is missing a required column.
type SchemaError struct {
	Feed    string
	Missing []string
	Header  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s feed: missing column(s) %s in header %v",
		e.Feed, strings.Join(e.Missing, ", "), e.Header)
}

// JoinError reports a sentiment date that maps to more than one regime,
// which would make the trade join ambiguous.
type JoinError struct {
	Date   market.Date
	Labels []market.Sentiment
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("sentiment feed: date %s has conflicting labels %v", e.Date, e.Labels)
}

// DuplicatePolicy decides what happens when the sentiment feed carries two
// rows for the same calendar date.
type DuplicatePolicy int

const (
	// LastWins keeps the later row, matching the stable-merge behavior of
	// the reference pipeline. This is the default.
	LastWins DuplicatePolicy = iota
	// Reject fails with a JoinError when duplicate rows for a date collapse
	// to different regimes. Duplicates with the same regime are harmless
	// and never rejected.
	Reject
)

// ParseDuplicatePolicy parses the config spelling of a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last-wins":
		return LastWins, nil
	case "reject":
		return Reject, nil
	}
	return 0, fmt.Errorf("unknown duplicate policy %q", s)
}
