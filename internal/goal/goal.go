// Package goal derives percentage-of-goal and remaining-budget figures from
// a daily total and the configured calorie target.
package goal

import (
	"errors"
	"math"
)

// ErrInvalidGoal is returned for a zero or negative target. Callers show an
// indeterminate value ("—") instead of Infinity or NaN.
var ErrInvalidGoal = errors.New("goal: target must be positive")

// PercentOfGoal returns round(total/target*100).
func PercentOfGoal(total, target float64) (int, error) {
	if target <= 0 {
		return 0, ErrInvalidGoal
	}
	return int(math.Round(total / target * 100)), nil
}

// Remaining returns the calories left in the daily budget, never negative.
func Remaining(total, target float64) float64 {
	return math.Max(0, target-total)
}
