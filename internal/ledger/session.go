package ledger

import (
	"errors"

	"fitfuel/internal/model"
)

// Phase is the lifecycle state of the current date selection. Saves are
// accepted only in PhaseReady, so a freshly selected day can never be
// overwritten by the not-yet-loaded empty in-memory state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
)

// ErrNotLoaded is returned when a mutation arrives before the selected
// day's ledger has finished loading.
var ErrNotLoaded = errors.New("ledger: selected day is not loaded")

// Store is the persistence contract the session engine needs.
type Store interface {
	Load(day model.Day) ([]model.FoodEntry, error)
	Save(day model.Day, entries []model.FoodEntry) error
}

// Session owns the single live ledger: the entry sequence for the currently
// selected day, held in memory and persisted on every mutation. All other
// days exist only in the store. Operations are synchronous; the session is
// driven by one event loop and is not safe for concurrent use.
type Session struct {
	store Store

	phase   Phase
	day     model.Day
	entries []model.FoodEntry

	goal float64

	// At most one lookup in flight at a time.
	lookupBusy bool
}

// NewSession creates an idle session. Call SelectDate before mutating.
func NewSession(store Store, goal float64) *Session {
	return &Session{store: store, goal: goal}
}

// SelectDate switches the live ledger to the given day, loading its
// persisted sequence first. The previous day's state is discarded, never
// saved under the new key. Re-selecting the already-loaded day is a no-op.
func (s *Session) SelectDate(day model.Day) error {
	if s.phase == PhaseReady && s.day == day {
		return nil
	}

	s.phase = PhaseLoading
	s.day = day
	s.entries = nil

	entries, err := s.store.Load(day)
	if err != nil {
		s.phase = PhaseIdle
		return err
	}

	s.entries = entries
	s.phase = PhaseReady
	return nil
}

// AddEntries creates entries from lookup items, inserts them at the head of
// the live sequence, and persists the day. The created entries are returned.
func (s *Session) AddEntries(items []model.FoodItem, meal model.Meal) ([]model.FoodEntry, error) {
	if s.phase != PhaseReady {
		return nil, ErrNotLoaded
	}

	added := model.NewEntries(items, meal)
	merged := make([]model.FoodEntry, 0, len(added)+len(s.entries))
	merged = append(merged, added...)
	merged = append(merged, s.entries...)

	if err := s.store.Save(s.day, merged); err != nil {
		return nil, err
	}
	s.entries = merged
	return added, nil
}

// RemoveEntry deletes the entry with the matching id and persists the day.
// An absent id is a no-op: no save happens and false is returned.
func (s *Session) RemoveEntry(id string) (bool, error) {
	if s.phase != PhaseReady {
		return false, ErrNotLoaded
	}

	kept := make([]model.FoodEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return false, nil
	}

	if err := s.store.Save(s.day, kept); err != nil {
		return false, err
	}
	s.entries = kept
	return true, nil
}

// BeginLookup marks a lookup as in flight and returns the day it was issued
// for. A second request while one is pending is rejected.
func (s *Session) BeginLookup() (model.Day, bool) {
	if s.lookupBusy {
		return "", false
	}
	s.lookupBusy = true
	return s.day, true
}

// FinishLookup applies a completed lookup. The result is bound to the day
// the request was issued for: if the selection has moved on since, the
// late response is dropped silently rather than inserted into the wrong
// day's ledger.
func (s *Session) FinishLookup(issuedFor model.Day, items []model.FoodItem, meal model.Meal) ([]model.FoodEntry, error) {
	s.lookupBusy = false
	if issuedFor != s.day || len(items) == 0 {
		return nil, nil
	}
	return s.AddEntries(items, meal)
}

// AbortLookup clears the in-flight flag after a failed lookup. The ledger
// is untouched.
func (s *Session) AbortLookup() {
	s.lookupBusy = false
}

// LookupBusy reports whether a lookup is in flight.
func (s *Session) LookupBusy() bool {
	return s.lookupBusy
}

// SetGoal updates the process-wide daily calorie target.
func (s *Session) SetGoal(v float64) {
	s.goal = v
}

// Goal returns the daily calorie target.
func (s *Session) Goal() float64 {
	return s.goal
}

// Day returns the currently selected day.
func (s *Session) Day() model.Day {
	return s.day
}

// Phase returns the current selection lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Entries returns the live entry sequence, most recent first.
func (s *Session) Entries() []model.FoodEntry {
	return s.entries
}

// Snapshot aggregates the live sequence.
func (s *Session) Snapshot() model.AggregateSnapshot {
	return Aggregate(s.entries)
}

// Trend returns the cumulative calorie series for the live sequence.
func (s *Session) Trend() []float64 {
	return RunningTotals(s.entries)
}

// Weekly returns the 7-day rollup ending at today, with today's point taken
// from the live snapshot.
func (s *Session) Weekly(today model.Day) ([]model.WeeklyPoint, error) {
	return WeeklyTotals(s.store, today, s.Snapshot())
}
