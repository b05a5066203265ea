package tui

import (
	"fmt"

	"fitfuel/internal/cli"
	"fitfuel/internal/goal"
	"fitfuel/internal/model"
	"fitfuel/internal/tui/components"
	"fitfuel/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Macro reference amounts used to scale the intake bars.
const (
	proteinRefG = 200.0
	carbsRefG   = 300.0
	fatRefG     = 70.0
)

func (a App) contentWidth() int {
	w := a.width - 2
	if w > 110 {
		w = 110
	}
	if w < 60 {
		w = 60
	}
	return w
}

func (a App) viewToday() string {
	t := theme.Active
	width := a.contentWidth()
	snap := a.sess.Snapshot()
	target := a.sess.Goal()

	cards := components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{"CALORIES", cli.FormatKcal(snap.TotalCalories) + " kcal", fmt.Sprintf("%d entries", len(a.sess.Entries()))},
		{"GOAL", cli.FormatGoalPercent(snap.TotalCalories, target), "of " + cli.FormatKcal(target) + " kcal"},
		{"REMAINING", cli.FormatKcal(goal.Remaining(snap.TotalCalories, target)) + " kcal", "until target"},
		{"PROTEIN", cli.FormatGrams(snap.TotalProteinG), "today"},
	}, width)

	frac := 0.0
	if target > 0 {
		frac = snap.TotalCalories / target
	}
	goalBody := components.GoalBar(frac, cli.FormatGoalPercent(snap.TotalCalories, target), components.CardInnerWidth(width))
	goalCard := components.ContentCard("Daily Goal", goalBody, width)

	macroW := components.CardInnerWidth(width) - 26
	if macroW < 10 {
		macroW = 10
	}
	macros := lipgloss.JoinVertical(lipgloss.Left,
		components.MacroBar("Protein", snap.TotalProteinG, proteinRefG, macroW, t.Blue),
		components.MacroBar("Carbs", snap.TotalCarbsG, carbsRefG, macroW, t.Orange),
		components.MacroBar("Fat", snap.TotalFatG, fatRefG, macroW, t.Yellow),
	)
	macroCard := components.ContentCard("Macronutrients", macros, width)

	queryCard := components.ContentCard("Add Food", a.viewQueryBox(), width)
	logCard := components.ContentCard("Activity Log", a.viewActivityLog(), width)

	sections := []string{cards, goalCard, macroCard, queryCard, logCard}

	if trend := a.sess.Trend(); len(trend) > 2 {
		spark := components.Sparkline(trend, t.Accent)
		sections = append(sections, components.ContentCard("Cumulative Trend", spark, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) viewQueryBox() string {
	t := theme.Active

	mealStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hint := lipgloss.NewStyle().Foreground(t.TextDim)

	line := a.queryInput.View()
	meal := mealStyle.Render(string(model.Meals[a.mealIdx]))
	if a.queryFocused {
		return lipgloss.JoinVertical(lipgloss.Left,
			line,
			hint.Render("meal: ")+meal+hint.Render("  [enter] submit  [esc] back"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		hint.Render("meal: ")+meal+hint.Render("  [i] type  [m] cycle meal"),
	)
}

func (a App) viewActivityLog() string {
	t := theme.Active
	entries := a.visibleEntries()

	var lines []string
	if a.filtering || a.filterInput.Value() != "" {
		lines = append(lines, a.filterInput.View(), "")
	}

	if len(entries) == 0 {
		empty := "No food logged yet today."
		if a.filterInput.Value() != "" {
			empty = "No entries match the filter."
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true).Render(empty))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	kcalStyle := lipgloss.NewStyle().Foreground(t.Green)

	for i, e := range entries {
		prefix := "  "
		style := nameStyle
		if i == a.cursor {
			prefix = "> "
			style = selStyle
		}

		marker := "+"
		if a.expanded[e.ID] {
			marker = "-"
		}
		line := prefix + dimStyle.Render(marker+" ") +
			style.Render(cli.Truncate(e.Name, 30)) +
			dimStyle.Render("  "+string(e.Meal)+"  ") +
			kcalStyle.Render(cli.FormatKcal(e.Calories)+" kcal")
		lines = append(lines, line)

		if a.expanded[e.ID] {
			detail := fmt.Sprintf("    protein %s   carbs %s   fat %s   serving %s   id %s",
				cli.FormatGrams(e.ProteinG),
				cli.FormatGrams(e.CarbsG),
				cli.FormatGrams(e.FatG),
				cli.FormatGrams(e.ServingG),
				cli.ShortID(e.ID))
			lines = append(lines, dimStyle.Render(detail))
		}
	}

	lines = append(lines, "", lipgloss.NewStyle().Foreground(t.TextDim).
		Render("[j/k] move  [enter] details  [x] delete  [/] filter"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
