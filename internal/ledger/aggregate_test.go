package ledger

import (
	"errors"
	"testing"

	"fitfuel/internal/model"
)

func entry(name string, kcal, protein, carbs, fat float64) model.FoodEntry {
	return model.FoodEntry{
		ID:       "id-" + name,
		Name:     name,
		Calories: kcal,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		Meal:     model.Snack,
	}
}

func TestAggregate_Sums(t *testing.T) {
	entries := []model.FoodEntry{
		entry("rice", 205, 4.3, 44.5, 0.4),
		entry("egg", 74, 6.3, 0.4, 5),
		entry("egg2", 74, 6.3, 0.4, 5),
	}

	snap := Aggregate(entries)
	if snap.TotalCalories != 353 {
		t.Errorf("TotalCalories = %v, want 353", snap.TotalCalories)
	}
	if snap.TotalProteinG != 16.9 {
		t.Errorf("TotalProteinG = %v, want 16.9", snap.TotalProteinG)
	}
	if snap.TotalCarbsG != 45.3 {
		t.Errorf("TotalCarbsG = %v, want 45.3", snap.TotalCarbsG)
	}
	if snap.TotalFatG != 10.4 {
		t.Errorf("TotalFatG = %v, want 10.4", snap.TotalFatG)
	}
}

func TestAggregate_Empty(t *testing.T) {
	snap := Aggregate(nil)
	if snap != (model.AggregateSnapshot{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero snapshot", snap)
	}
}

func TestRunningTotals(t *testing.T) {
	// Sequences are stored newest-first: breakfast was logged before lunch.
	entries := []model.FoodEntry{
		entry("lunch", 600, 0, 0, 0),
		entry("breakfast", 400, 0, 0, 0),
	}

	got := RunningTotals(entries)
	want := []float64{0, 400, 1000}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("totals[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRunningTotals_EmptyHasLeadingZero(t *testing.T) {
	got := RunningTotals(nil)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("RunningTotals(nil) = %v, want [0]", got)
	}
}

// mapLoader serves stored days from a map; absent days load as empty.
type mapLoader struct {
	days    map[model.Day][]model.FoodEntry
	loadErr error
}

func (m *mapLoader) Load(day model.Day) ([]model.FoodEntry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.days[day], nil
}

func TestWeeklyTotals_LiveTodayStoredHistory(t *testing.T) {
	today := model.Day("2026-08-28")
	loader := &mapLoader{days: map[model.Day][]model.FoodEntry{
		"2026-08-26": {entry("a", 1800, 0, 0, 0)},
		// A stale record for today must be ignored in favor of the
		// live snapshot.
		"2026-08-28": {entry("stale", 9999, 0, 0, 0)},
	}}

	points, err := WeeklyTotals(loader, today, model.AggregateSnapshot{TotalCalories: 420})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 7 {
		t.Fatalf("len(points) = %d, want 7", len(points))
	}
	if points[0].Day != "2026-08-22" {
		t.Errorf("points[0].Day = %s, want 2026-08-22", points[0].Day)
	}
	if points[6].Day != today {
		t.Errorf("points[6].Day = %s, want %s", points[6].Day, today)
	}
	if points[6].Total != 420 {
		t.Errorf("today's Total = %v, want 420 (live snapshot)", points[6].Total)
	}
	if points[4].Total != 1800 {
		t.Errorf("2026-08-26 Total = %v, want 1800", points[4].Total)
	}
	if points[1].Total != 0 {
		t.Errorf("absent day Total = %v, want 0", points[1].Total)
	}
	if points[6].Label != "Fri" {
		t.Errorf("today's Label = %q, want Fri", points[6].Label)
	}
}

func TestWeeklyTotals_WindowShiftsWithToday(t *testing.T) {
	loader := &mapLoader{days: map[model.Day][]model.FoodEntry{}}

	points, err := WeeklyTotals(loader, model.Day("2026-03-03"), model.AggregateSnapshot{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points[0].Day != "2026-02-25" {
		t.Errorf("points[0].Day = %s, want 2026-02-25", points[0].Day)
	}
}

func TestWeeklyTotals_LoadErrorPropagates(t *testing.T) {
	wantErr := errors.New("disk gone")
	loader := &mapLoader{loadErr: wantErr}

	_, err := WeeklyTotals(loader, model.Day("2026-08-28"), model.AggregateSnapshot{})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
}
