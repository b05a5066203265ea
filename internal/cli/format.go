// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fitfuel/internal/goal"
)

// FormatKcal formats a calorie value as a rounded, comma-grouped count.
// e.g., 1234.4 -> "1,234"
func FormatKcal(v float64) string {
	return FormatNumber(int64(math.Round(v)))
}

// FormatGrams formats a gram measurement, keeping one decimal only for
// sub-10g amounts. e.g., 0.5 -> "0.5g", 45.2 -> "45g"
func FormatGrams(v float64) string {
	if v < 10 && v != math.Trunc(v) {
		return fmt.Sprintf("%.1fg", v)
	}
	return fmt.Sprintf("%.0fg", v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatGoalPercent renders the percentage of the daily target consumed.
// An unusable target yields the indeterminate marker instead of a number.
func FormatGoalPercent(total, target float64) string {
	pct, err := goal.PercentOfGoal(total, target)
	if err != nil {
		return "—"
	}
	return strconv.Itoa(pct) + "%"
}

// ShortID returns the leading segment of an entry id for display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Truncate shortens a string to limit runes with an ellipsis.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
