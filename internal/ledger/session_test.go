package ledger

import (
	"errors"
	"testing"

	"fitfuel/internal/model"
)

// fakeStore records every save so tests can assert exactly what was
// persisted, and under which day key.
type fakeStore struct {
	days    map[model.Day][]model.FoodEntry
	saves   []model.Day
	loadErr error
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{days: make(map[model.Day][]model.FoodEntry)}
}

func (f *fakeStore) Load(day model.Day) ([]model.FoodEntry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.days[day], nil
}

func (f *fakeStore) Save(day model.Day, entries []model.FoodEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.days[day] = entries
	f.saves = append(f.saves, day)
	return nil
}

func readySession(t *testing.T, store *fakeStore, day model.Day) *Session {
	t.Helper()
	s := NewSession(store, 2500)
	if err := s.SelectDate(day); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	return s
}

func TestSession_MutationsRejectedBeforeLoad(t *testing.T) {
	s := NewSession(newFakeStore(), 2500)

	if _, err := s.AddEntries([]model.FoodItem{{Name: "rice"}}, model.Lunch); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("AddEntries err = %v, want ErrNotLoaded", err)
	}
	if _, err := s.RemoveEntry("x"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("RemoveEntry err = %v, want ErrNotLoaded", err)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle", s.Phase())
	}
}

func TestSession_AddEntriesPrependsAndSaves(t *testing.T) {
	store := newFakeStore()
	day := model.Day("2026-08-28")
	s := readySession(t, store, day)

	if _, err := s.AddEntries([]model.FoodItem{{Name: "oats", Calories: 300}}, model.Breakfast); err != nil {
		t.Fatalf("AddEntries: %v", err)
	}
	added, err := s.AddEntries([]model.FoodItem{{Name: "rice", Calories: 205}}, model.Lunch)
	if err != nil {
		t.Fatalf("AddEntries: %v", err)
	}

	if len(added) != 1 || added[0].ID == "" {
		t.Fatalf("added = %+v, want one entry with an id", added)
	}
	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Name != "rice" {
		t.Errorf("entries[0].Name = %q, want rice (newest first)", entries[0].Name)
	}
	if entries[0].Meal != model.Lunch {
		t.Errorf("entries[0].Meal = %q, want Lunch", entries[0].Meal)
	}
	if len(store.days[day]) != 2 {
		t.Errorf("persisted %d entries, want 2", len(store.days[day]))
	}
}

func TestSession_SaveFailureLeavesLedgerUntouched(t *testing.T) {
	store := newFakeStore()
	s := readySession(t, store, "2026-08-28")
	store.saveErr = errors.New("disk full")

	_, err := s.AddEntries([]model.FoodItem{{Name: "rice", Calories: 205}}, model.Lunch)
	if err == nil {
		t.Fatal("expected save error")
	}
	if len(s.Entries()) != 0 {
		t.Errorf("len(entries) = %d, want 0 after failed save", len(s.Entries()))
	}
}

func TestSession_SelectDateDiscardsPreviousState(t *testing.T) {
	store := newFakeStore()
	s := readySession(t, store, "2026-08-27")
	if _, err := s.AddEntries([]model.FoodItem{{Name: "pasta", Calories: 700}}, model.Dinner); err != nil {
		t.Fatalf("AddEntries: %v", err)
	}

	if err := s.SelectDate("2026-08-28"); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}

	if len(s.Entries()) != 0 {
		t.Errorf("new day has %d entries, want 0", len(s.Entries()))
	}
	// Switching days must not write the old sequence under the new key.
	for _, day := range store.saves {
		if day == "2026-08-28" {
			t.Error("date switch saved under the new day's key")
		}
	}
	if len(store.days["2026-08-27"]) != 1 {
		t.Errorf("previous day has %d persisted entries, want 1", len(store.days["2026-08-27"]))
	}
}

func TestSession_SelectDateSameDayIsNoop(t *testing.T) {
	store := newFakeStore()
	s := readySession(t, store, "2026-08-28")
	if _, err := s.AddEntries([]model.FoodItem{{Name: "rice", Calories: 205}}, model.Lunch); err != nil {
		t.Fatalf("AddEntries: %v", err)
	}

	if err := s.SelectDate("2026-08-28"); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if len(s.Entries()) != 1 {
		t.Errorf("re-selecting the loaded day reloaded: %d entries, want 1", len(s.Entries()))
	}
}

func TestSession_SelectDateLoadErrorResetsToIdle(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("corrupt db")
	s := NewSession(store, 2500)

	if err := s.SelectDate("2026-08-28"); err == nil {
		t.Fatal("expected load error")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle", s.Phase())
	}
	if _, err := s.AddEntries([]model.FoodItem{{Name: "rice"}}, model.Lunch); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("AddEntries err = %v, want ErrNotLoaded", err)
	}
}

func TestSession_RemoveEntry(t *testing.T) {
	store := newFakeStore()
	s := readySession(t, store, "2026-08-28")
	added, err := s.AddEntries([]model.FoodItem{{Name: "rice", Calories: 205}}, model.Lunch)
	if err != nil {
		t.Fatalf("AddEntries: %v", err)
	}
	savesBefore := len(store.saves)

	removed, err := s.RemoveEntry(added[0].ID)
	if err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if !removed {
		t.Error("removed = false, want true")
	}
	if len(s.Entries()) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(s.Entries()))
	}

	// An absent id is a no-op with no save.
	removed, err = s.RemoveEntry("nope")
	if err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if removed {
		t.Error("removed = true for absent id, want false")
	}
	if len(store.saves) != savesBefore+1 {
		t.Errorf("saves = %d, want %d (no save for absent id)", len(store.saves), savesBefore+1)
	}
}

func TestSession_LookupBusyFlag(t *testing.T) {
	s := readySession(t, newFakeStore(), "2026-08-28")

	day, ok := s.BeginLookup()
	if !ok || day != "2026-08-28" {
		t.Fatalf("BeginLookup = (%s, %v), want (2026-08-28, true)", day, ok)
	}
	if _, ok := s.BeginLookup(); ok {
		t.Error("second BeginLookup accepted while one is in flight")
	}

	s.AbortLookup()
	if s.LookupBusy() {
		t.Error("LookupBusy = true after abort")
	}
	if _, ok := s.BeginLookup(); !ok {
		t.Error("BeginLookup rejected after abort")
	}
}

func TestSession_StaleLookupDropped(t *testing.T) {
	store := newFakeStore()
	s := readySession(t, store, "2026-08-27")

	issuedFor, _ := s.BeginLookup()
	if err := s.SelectDate("2026-08-28"); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}

	added, err := s.FinishLookup(issuedFor, []model.FoodItem{{Name: "rice", Calories: 205}}, model.Lunch)
	if err != nil {
		t.Fatalf("FinishLookup: %v", err)
	}
	if added != nil {
		t.Errorf("stale lookup added %d entries, want none", len(added))
	}
	if len(s.Entries()) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(s.Entries()))
	}
	if s.LookupBusy() {
		t.Error("LookupBusy = true after stale drop")
	}
	if len(store.saves) != 0 {
		t.Errorf("saves = %d, want 0", len(store.saves))
	}
}

func TestSession_FinishLookupApplies(t *testing.T) {
	store := newFakeStore()
	s := readySession(t, store, "2026-08-28")

	issuedFor, _ := s.BeginLookup()
	added, err := s.FinishLookup(issuedFor, []model.FoodItem{
		{Name: "white rice", Calories: 205},
		{Name: "egg", Calories: 74},
	}, model.Dinner)
	if err != nil {
		t.Fatalf("FinishLookup: %v", err)
	}

	if len(added) != 2 {
		t.Fatalf("len(added) = %d, want 2", len(added))
	}
	if s.LookupBusy() {
		t.Error("LookupBusy = true after finish")
	}
	if got := s.Snapshot().TotalCalories; got != 279 {
		t.Errorf("TotalCalories = %v, want 279", got)
	}
	if len(store.days["2026-08-28"]) != 2 {
		t.Errorf("persisted %d entries, want 2", len(store.days["2026-08-28"]))
	}
}
