package tui

import (
	"fitfuel/internal/cli"
	"fitfuel/internal/tui/components"
	"fitfuel/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewWeek() string {
	t := theme.Active
	width := a.contentWidth()

	points, err := a.sess.Weekly(a.sess.Day())
	if err != nil {
		msg := lipgloss.NewStyle().Foreground(t.Red).Render("Could not load weekly history: " + err.Error())
		return components.ContentCard("Weekly Summary", msg, width)
	}

	values := make([]float64, len(points))
	labels := make([]string, len(points))
	var sum, best float64
	for i, p := range points {
		values[i] = p.Total
		labels[i] = p.Label
		sum += p.Total
		if p.Total > best {
			best = p.Total
		}
	}
	avg := sum / float64(len(points))

	cards := components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{"WEEK TOTAL", cli.FormatKcal(sum) + " kcal", "last 7 days"},
		{"DAILY AVG", cli.FormatKcal(avg) + " kcal", "per day"},
		{"PEAK DAY", cli.FormatKcal(best) + " kcal", "highest intake"},
	}, width)

	// Rightmost bar is the selected day, live from the in-memory ledger.
	chart := components.BarChart(values, labels, len(values)-1, t.Blue, components.CardInnerWidth(width), 10)
	chartCard := components.ContentCard("Calories — Last 7 Days", chart, width)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var rows []string
	for i, p := range points {
		label := p.Label
		style := dimStyle
		if i == len(points)-1 {
			style = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		}
		rows = append(rows,
			style.Render(label)+"  "+
				dimStyle.Render(string(p.Day))+"  "+
				lipgloss.NewStyle().Foreground(t.TextPrimary).Render(cli.FormatKcal(p.Total)+" kcal")+"  "+
				dimStyle.Render(cli.FormatGoalPercent(p.Total, a.sess.Goal())+" of goal"))
	}
	tableCard := components.ContentCard("Day by Day", lipgloss.JoinVertical(lipgloss.Left, rows...), width)

	return lipgloss.JoinVertical(lipgloss.Left, cards, chartCard, tableCard)
}
