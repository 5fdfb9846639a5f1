package market

import (
	"fmt"
	"strings"
)

// Sentiment is the 3-class market regime for a calendar date.
type Sentiment string

const (
	Fear    Sentiment = "Fear"
	Neutral Sentiment = "Neutral"
	Greed   Sentiment = "Greed"
)

// Sentiments lists the regimes in display order.
var Sentiments = []Sentiment{Fear, Neutral, Greed}

// collapse folds the 5-class fear/greed index into 3 classes.
var collapse = map[string]Sentiment{
	"Extreme Fear":  Fear,
	"Fear":          Fear,
	"Neutral":       Neutral,
	"Greed":         Greed,
	"Extreme Greed": Greed,
}

// CollapseLabel canonicalizes a raw classification value (any casing,
// surrounding whitespace tolerated) into its 3-class regime.
func CollapseLabel(raw string) (Sentiment, error) {
	s, ok := collapse[titleCase(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("unknown sentiment classification %q", raw)
	}
	return s, nil
}

// ParseSentiment parses an already-collapsed 3-class label.
func ParseSentiment(s string) (Sentiment, error) {
	switch titleCase(strings.TrimSpace(s)) {
	case "Fear":
		return Fear, nil
	case "Neutral":
		return Neutral, nil
	case "Greed":
		return Greed, nil
	}
	return "", fmt.Errorf("unknown sentiment %q", s)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
