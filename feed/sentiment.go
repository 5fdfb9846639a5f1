package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rustyeddy/traderpulse/market"
)

// sentimentRow is the raw shape of one fear/greed index row. The feed is
// seen in the wild with both lower- and title-cased headers; headerReader
// folds those to the lower-case spelling before decode. Extra columns
// (timestamp, raw index value) are ignored.
type sentimentRow struct {
	Date           string `csv:"date"`
	Classification string `csv:"classification"`
}

var sentimentColumns = []string{"date", "classification"}

// ReadSentiment parses the sentiment feed and collapses each row's 5-class
// classification into the 3-class regime. Duplicate dates are resolved by
// policy: LastWins keeps the later row, Reject fails with a JoinError when
// the duplicates disagree. Records come back sorted by date.
func ReadSentiment(r io.Reader, policy DuplicatePolicy) ([]market.SentimentRecord, error) {
	hr := newHeaderReader("sentiment", csv.NewReader(r), strings.ToLower, sentimentColumns)

	var rows []*sentimentRow
	if err := gocsv.UnmarshalCSV(hr, &rows); err != nil {
		return nil, fmt.Errorf("parse sentiment feed: %w", err)
	}

	byDate := make(map[market.Date]market.Sentiment, len(rows))
	for _, row := range rows {
		date, err := market.ParseDate(strings.TrimSpace(row.Date))
		if err != nil {
			return nil, fmt.Errorf("parse sentiment feed: bad date %q: %w", row.Date, err)
		}
		sent, err := market.CollapseLabel(row.Classification)
		if err != nil {
			return nil, fmt.Errorf("parse sentiment feed: %w", err)
		}
		if prev, ok := byDate[date]; ok && prev != sent && policy == Reject {
			return nil, &JoinError{Date: date, Labels: []market.Sentiment{prev, sent}}
		}
		byDate[date] = sent
	}

	out := make([]market.SentimentRecord, 0, len(byDate))
	for date, sent := range byDate {
		out = append(out, market.SentimentRecord{Date: date, Sentiment: sent})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// LoadSentimentFile reads the sentiment feed from disk.
func LoadSentimentFile(path string, policy DuplicatePolicy) ([]market.SentimentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentiment feed: %w", err)
	}
	defer f.Close()
	return ReadSentiment(f, policy)
}
