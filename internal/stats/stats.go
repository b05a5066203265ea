// Package stats computes all-time summary statistics over the stored ledger.
package stats

import (
	"fmt"

	"fitfuel/internal/model"
)

// Source is the read side of the ledger store the history reduce needs.
type Source interface {
	Days() ([]model.Day, error)
	Load(day model.Day) ([]model.FoodEntry, error)
}

// HistoryStats summarizes every persisted day of the ledger.
type HistoryStats struct {
	DaysLogged   int
	TotalEntries int

	TotalCalories float64
	TotalProteinG float64
	TotalCarbsG   float64
	TotalFatG     float64

	AvgCaloriesPerDay float64
	PeakDay           model.Day
	PeakCalories      float64

	// Days whose total landed at or under the daily target.
	DaysOnTarget int

	// Consecutive logged days ending at today (or yesterday, when today
	// has no entries yet).
	Streak int

	EntriesPerMeal map[model.Meal]int
}

// Compute reduces every stored day to a single summary. Days persisted with
// an empty sequence count as logged days; the streak only counts days that
// actually contain entries.
func Compute(src Source, today model.Day, target float64) (HistoryStats, error) {
	days, err := src.Days()
	if err != nil {
		return HistoryStats{}, fmt.Errorf("listing ledger days: %w", err)
	}

	stats := HistoryStats{
		EntriesPerMeal: make(map[model.Meal]int),
	}
	nonEmpty := make(map[model.Day]bool, len(days))

	for _, day := range days {
		entries, err := src.Load(day)
		if err != nil {
			return HistoryStats{}, fmt.Errorf("loading %s: %w", day, err)
		}

		stats.DaysLogged++
		stats.TotalEntries += len(entries)
		if len(entries) > 0 {
			nonEmpty[day] = true
		}

		var dayTotal float64
		for _, e := range entries {
			dayTotal += e.Calories
			stats.TotalProteinG += e.ProteinG
			stats.TotalCarbsG += e.CarbsG
			stats.TotalFatG += e.FatG
			stats.EntriesPerMeal[e.Meal]++
		}
		stats.TotalCalories += dayTotal

		if dayTotal > stats.PeakCalories {
			stats.PeakCalories = dayTotal
			stats.PeakDay = day
		}
		if target > 0 && dayTotal <= target {
			stats.DaysOnTarget++
		}
	}

	if stats.DaysLogged > 0 {
		stats.AvgCaloriesPerDay = stats.TotalCalories / float64(stats.DaysLogged)
	}

	// The streak may start yesterday so an unlogged morning doesn't zero it.
	start := today
	if !nonEmpty[start] {
		start = start.AddDays(-1)
	}
	for d := start; nonEmpty[d]; d = d.AddDays(-1) {
		stats.Streak++
	}

	return stats, nil
}
