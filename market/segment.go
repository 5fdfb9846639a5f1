package market

// LeverageSegment buckets an account by lifetime average leverage.
// Labels match the dashboard feed downstream of this pipeline.
type LeverageSegment string

const (
	LeverageLow    LeverageSegment = "Low (<5x)"
	LeverageMedium LeverageSegment = "Medium (5-10x)"
	LeverageHigh   LeverageSegment = "High (>10x)"
)

// LeverageSegments lists the buckets in ascending order.
var LeverageSegments = []LeverageSegment{LeverageLow, LeverageMedium, LeverageHigh}

// FrequencySegment buckets an account by average daily trade count,
// with boundaries computed from the population tertiles.
type FrequencySegment string

const (
	FrequencyLow    FrequencySegment = "Low Frequency"
	FrequencyMedium FrequencySegment = "Medium Frequency"
	FrequencyHigh   FrequencySegment = "High Frequency"
)

// FrequencySegments lists the buckets in ascending order.
var FrequencySegments = []FrequencySegment{FrequencyLow, FrequencyMedium, FrequencyHigh}
