package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseLabel(t *testing.T) {
	t.Parallel()

	cases := map[string]Sentiment{
		"Extreme Fear":  Fear,
		"Fear":          Fear,
		"Neutral":       Neutral,
		"Greed":         Greed,
		"Extreme Greed": Greed,
	}
	for raw, want := range cases {
		got, err := CollapseLabel(raw)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCollapseLabelTolerant(t *testing.T) {
	t.Parallel()

	got, err := CollapseLabel("  extreme GREED ")
	assert.NoError(t, err)
	assert.Equal(t, Greed, got)

	got, err = CollapseLabel("fear")
	assert.NoError(t, err)
	assert.Equal(t, Fear, got)
}

func TestCollapseLabelUnknown(t *testing.T) {
	t.Parallel()

	_, err := CollapseLabel("Panic")
	assert.Error(t, err)
}

func TestParseSentiment(t *testing.T) {
	t.Parallel()

	got, err := ParseSentiment("neutral")
	assert.NoError(t, err)
	assert.Equal(t, Neutral, got)

	_, err = ParseSentiment("Extreme Fear") // only 3-class labels here
	assert.Error(t, err)
}
