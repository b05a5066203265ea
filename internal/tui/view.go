package tui

import (
	"strconv"
	"strings"

	"fitfuel/internal/tui/components"
	"fitfuel/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	t := theme.Active

	var content string
	switch a.activeTab {
	case tabToday:
		content = a.viewToday()
	case tabWeek:
		content = a.viewWeek()
	case tabSettings:
		content = a.viewSettings()
	}

	if a.confirm != nil {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			"",
			lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(t.Red).
				Padding(0, 2).
				Render(a.confirm.View()),
		)
	}

	left := "FitFuel  " + string(a.sess.Day()) + " (" + a.sess.Day().Weekday() + ")"
	right := a.statusRight()

	sections := []string{
		components.RenderTabBar(a.activeTab),
		"",
		content,
		"",
		components.RenderStatusBar(a.width, left, right),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) statusRight() string {
	t := theme.Active
	if a.sess.LookupBusy() {
		return a.spinner.View() + lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Analyzing...")
	}
	if a.notice != "" {
		return lipgloss.NewStyle().Foreground(t.Orange).Render(a.notice)
	}
	return lipgloss.NewStyle().Foreground(t.TextDim).Render("[1-3] tabs  [i] add  [q] quit")
}

func parseGoal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
