// Package model defines domain types for fitfuel ledgers and entries.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meal is the meal slot an entry was logged under.
type Meal string

const (
	Breakfast Meal = "Breakfast"
	Lunch     Meal = "Lunch"
	Dinner    Meal = "Dinner"
	Snack     Meal = "Snack"
)

// Meals lists all meal slots in day order.
var Meals = []Meal{Breakfast, Lunch, Dinner, Snack}

// ParseMeal matches a user-supplied meal name case-insensitively.
func ParseMeal(s string) (Meal, error) {
	for _, m := range Meals {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown meal %q (expected breakfast, lunch, dinner, or snack)", s)
}

// FoodItem is one result from the nutrition lookup: measurements only,
// not yet tied to a day or meal.
type FoodItem struct {
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbohydrates_total_g"`
	FatG      float64 `json:"fat_total_g"`
	ServingG  float64 `json:"serving_size_g"`
}

// FoodEntry is one consumed food item in a day's ledger.
// Entries are immutable after creation; removal is by ID only.
type FoodEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbohydrates_total_g"`
	FatG     float64 `json:"fat_total_g"`
	ServingG float64 `json:"serving_size_g"`
	Meal     Meal    `json:"meal"`
}

// NewEntry creates a ledger entry from a lookup item, tagged with the meal
// that was active when the lookup was issued. UUIDv7 ids carry a millisecond
// timestamp plus random bits, so rapid successive calls cannot collide.
func NewEntry(item FoodItem, meal Meal) FoodEntry {
	return FoodEntry{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Name:     item.Name,
		Calories: item.Calories,
		ProteinG: item.ProteinG,
		CarbsG:   item.CarbsG,
		FatG:     item.FatG,
		ServingG: item.ServingG,
		Meal:     meal,
	}
}

// NewEntries converts a batch of lookup items into entries.
func NewEntries(items []FoodItem, meal Meal) []FoodEntry {
	entries := make([]FoodEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, NewEntry(item, meal))
	}
	return entries
}

// DayFormat is the calendar-date key layout used throughout fitfuel.
const DayFormat = "2006-01-02"

// Day is a calendar date key in YYYY-MM-DD form.
type Day string

// DayOf truncates a point in time to its local calendar day.
func DayOf(t time.Time) Day {
	return Day(t.Format(DayFormat))
}

// ParseDay validates a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return DayOf(t), nil
}

// Time returns the midnight instant of the day in local time.
// A zero time is returned for a malformed key.
func (d Day) Time() time.Time {
	t, _ := time.ParseInLocation(DayFormat, string(d), time.Local)
	return t
}

// AddDays returns the day offset by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the fixed English 3-letter weekday abbreviation.
func (d Day) Weekday() string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	return days[d.Time().Weekday()]
}
