package tui

import (
	"fitfuel/internal/cli"
	"fitfuel/internal/config"
	"fitfuel/internal/tui/components"
	"fitfuel/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewSettings() string {
	t := theme.Active
	width := a.contentWidth()

	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var goalBody string
	if a.editingGoal {
		goalBody = lipgloss.JoinVertical(lipgloss.Left,
			a.goalInput.View(),
			dimStyle.Render("[enter] save  [esc] cancel"),
		)
	} else {
		goalBody = lipgloss.JoinVertical(lipgloss.Left,
			dimStyle.Render("Daily target: ")+valStyle.Render(cli.FormatKcal(a.sess.Goal())+" kcal"),
			dimStyle.Render("[g] change"),
		)
	}
	goalCard := components.ContentCard("Calorie Goal", goalBody, width)

	var themeRows []string
	for i, th := range theme.All {
		prefix := "  "
		style := dimStyle
		if i == a.themeIdx {
			prefix = "> "
			style = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		}
		themeRows = append(themeRows, prefix+style.Render(th.Name))
	}
	themeRows = append(themeRows, "", dimStyle.Render("[j/k] select — applied and saved immediately"))
	themeCard := components.ContentCard("Theme", lipgloss.JoinVertical(lipgloss.Left, themeRows...), width)

	key := config.GetAPIKey(a.cfg)
	keyLine := dimStyle.Render("API key: ")
	if key == "" {
		keyLine += lipgloss.NewStyle().Foreground(t.Orange).Render("not set — run `fitfuel setup`")
	} else {
		keyLine += valStyle.Render(maskKey(key))
	}
	infoBody := lipgloss.JoinVertical(lipgloss.Left,
		keyLine,
		dimStyle.Render("Config:  ")+valStyle.Render(config.Path()),
		dimStyle.Render("Data:    ")+valStyle.Render(config.DataDir(a.cfg)),
	)
	infoCard := components.ContentCard("About", infoBody, width)

	return lipgloss.JoinVertical(lipgloss.Left, goalCard, themeCard, infoCard)
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
