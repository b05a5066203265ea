package model

// AggregateSnapshot holds the derived sums for one day's ledger.
// It is never persisted — always recomputed from the entry sequence.
type AggregateSnapshot struct {
	TotalCalories float64
	TotalProteinG float64
	TotalCarbsG   float64
	TotalFatG     float64
}

// WeeklyPoint is one bar of the 7-day rollup.
type WeeklyPoint struct {
	Day   Day
	Label string // weekday abbreviation, e.g. "Mon"
	Total float64
}
