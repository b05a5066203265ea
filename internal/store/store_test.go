package store

import (
	"path/filepath"
	"testing"

	"fitfuel/internal/model"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedger_RoundTrip(t *testing.T) {
	l := openTestLedger(t)
	day := model.Day("2026-08-28")

	entries := []model.FoodEntry{
		{ID: "b", Name: "egg", Calories: 74, ProteinG: 6.3, Meal: model.Breakfast},
		{ID: "a", Name: "rice", Calories: 205, CarbsG: 44.5, Meal: model.Lunch},
	}
	if err := l.Save(day, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := l.Load(day)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "egg" || got[1].Name != "rice" {
		t.Errorf("order = [%s, %s], want [egg, rice]", got[0].Name, got[1].Name)
	}
	if got[0].ProteinG != 6.3 {
		t.Errorf("ProteinG = %v, want 6.3", got[0].ProteinG)
	}
	if got[0].Meal != model.Breakfast {
		t.Errorf("Meal = %q, want Breakfast", got[0].Meal)
	}
}

func TestLedger_MissingDayLoadsEmpty(t *testing.T) {
	l := openTestLedger(t)

	got, err := l.Load("2026-01-01")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load(missing) = %v, want nil", got)
	}
}

func TestLedger_MalformedRecordLoadsEmpty(t *testing.T) {
	l := openTestLedger(t)
	day := model.Day("2026-08-28")

	_, err := l.db.Exec(
		`INSERT INTO ledger_days (day, entries, saved_at) VALUES (?, ?, ?)`,
		string(day), "{not json", "2026-08-28T12:00:00Z",
	)
	if err != nil {
		t.Fatalf("seeding malformed row: %v", err)
	}

	got, err := l.Load(day)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load(malformed) = %v, want nil", got)
	}
}

func TestLedger_SaveOverwrites(t *testing.T) {
	l := openTestLedger(t)
	day := model.Day("2026-08-28")

	if err := l.Save(day, []model.FoodEntry{{ID: "a", Name: "rice"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := l.Save(day, []model.FoodEntry{{ID: "b", Name: "egg"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Saving identical content again is fine.
	if err := l.Save(day, []model.FoodEntry{{ID: "b", Name: "egg"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := l.Load(day)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Name != "egg" {
		t.Errorf("Load = %+v, want single egg entry", got)
	}
}

func TestLedger_SaveNilWritesEmptySequence(t *testing.T) {
	l := openTestLedger(t)
	day := model.Day("2026-08-28")

	if err := l.Save(day, []model.FoodEntry{{ID: "a", Name: "rice"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := l.Save(day, nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}

	got, err := l.Load(day)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestLedger_AppendPrepends(t *testing.T) {
	l := openTestLedger(t)
	day := model.Day("2026-08-28")

	if err := l.Append(day, []model.FoodEntry{{ID: "a", Name: "oats"}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := l.Append(day, []model.FoodEntry{{ID: "b", Name: "rice"}}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := l.Load(day)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0].Name != "rice" {
		t.Errorf("head = %q, want rice (newest first)", got[0].Name)
	}
}

func TestLedger_Remove(t *testing.T) {
	l := openTestLedger(t)
	day := model.Day("2026-08-28")

	if err := l.Save(day, []model.FoodEntry{{ID: "a", Name: "rice"}, {ID: "b", Name: "egg"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := l.Remove(day, "a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Absent id is a no-op.
	if err := l.Remove(day, "zzz"); err != nil {
		t.Fatalf("Remove(absent): %v", err)
	}

	got, err := l.Load(day)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("Load = %+v, want only entry b", got)
	}
}

func TestLedger_DaysNewestFirst(t *testing.T) {
	l := openTestLedger(t)

	for _, d := range []model.Day{"2026-08-26", "2026-08-28", "2026-08-27"} {
		if err := l.Save(d, nil); err != nil {
			t.Fatalf("Save(%s): %v", d, err)
		}
	}

	days, err := l.Days()
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	want := []model.Day{"2026-08-28", "2026-08-27", "2026-08-26"}
	if len(days) != len(want) {
		t.Fatalf("len = %d, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}
