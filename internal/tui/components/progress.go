package components

import (
	"fmt"
	"strings"

	"fitfuel/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ColorForGoal returns the bar color for a consumed/target fraction:
// green under the target, orange when closing in, red once over.
func ColorForGoal(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Red
	case pct >= 0.85:
		return t.Orange
	default:
		return t.Green
	}
}

// GoalBar renders the daily-target progress bar with a percentage readout.
// pctLabel carries the display value ("50%" or "—" for an invalid target).
func GoalBar(pct float64, pctLabel string, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	shown := pct
	if shown > 1 {
		shown = 1
	}

	filled := int(shown * float64(width))
	if filled > width {
		filled = width
	}

	color := ColorForGoal(pct)
	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(pctLabel)
}

// MacroBar renders one labeled macro bar scaled against a reference amount.
func MacroBar(label string, grams, reference float64, barWidth int, color lipgloss.Color) string {
	t := theme.Active

	frac := 0.0
	if reference > 0 {
		frac = grams / reference
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(frac * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(color)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(fmt.Sprintf("%-8s", label)),
		barStyle.Render(strings.Repeat("█", filled))+dimStyle.Render(strings.Repeat("░", barWidth-filled)),
		valStyle.Render(fmt.Sprintf("%.0fg", grams)),
	)
}
