// Package ledger holds the daily ledger session engine and its aggregation
// logic: single-day totals, the running per-entry trend, and the 7-day
// rollup that combines live state with persisted history.
package ledger

import (
	"fmt"

	"fitfuel/internal/model"
)

// Aggregate reduces an entry sequence to its snapshot. It is recomputed from
// scratch on every call — there are no incremental counters to drift from
// the underlying sequence.
func Aggregate(entries []model.FoodEntry) model.AggregateSnapshot {
	var snap model.AggregateSnapshot
	for _, e := range entries {
		snap.TotalCalories += e.Calories
		snap.TotalProteinG += e.ProteinG
		snap.TotalCarbsG += e.CarbsG
		snap.TotalFatG += e.FatG
	}
	return snap
}

// RunningTotals produces the cumulative calorie series for the trend chart:
// a leading zero, then one point per entry in the order the entries were
// logged. Sequences are stored newest-first, so the walk is reversed.
func RunningTotals(entries []model.FoodEntry) []float64 {
	totals := make([]float64, 0, len(entries)+1)
	totals = append(totals, 0)

	sum := 0.0
	for i := len(entries) - 1; i >= 0; i-- {
		sum += entries[i].Calories
		totals = append(totals, sum)
	}
	return totals
}

// Loader is the read side of the ledger store needed by the weekly rollup.
type Loader interface {
	Load(day model.Day) ([]model.FoodEntry, error)
}

// WeeklyTotals reconstructs the 7 calendar days ending at today, oldest
// first. Today's point comes from the live snapshot so the chart reflects
// in-memory edits instantly; every other day is re-aggregated from the
// store, defaulting to 0 where no record exists.
func WeeklyTotals(loader Loader, today model.Day, live model.AggregateSnapshot) ([]model.WeeklyPoint, error) {
	points := make([]model.WeeklyPoint, 0, 7)

	for i := 6; i >= 0; i-- {
		day := today.AddDays(-i)
		point := model.WeeklyPoint{Day: day, Label: day.Weekday()}

		if day == today {
			point.Total = live.TotalCalories
		} else {
			entries, err := loader.Load(day)
			if err != nil {
				return nil, fmt.Errorf("rolling up %s: %w", day, err)
			}
			point.Total = Aggregate(entries).TotalCalories
		}

		points = append(points, point)
	}
	return points, nil
}
